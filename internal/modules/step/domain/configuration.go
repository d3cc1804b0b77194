package domain

import (
	"strconv"
	"strings"

	"github.com/reshetovitsme/news-workflow-bot/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// CallbackID identifies the workflow step on the host platform
const CallbackID = "news_step"

// Keys of the stored step inputs. They double as form block ids.
const (
	InputChannelIDs  = "channel_ids"
	InputQuery       = "query"
	InputNumArticles = "num_articles"
)

// OutputLabel labels every declared channel output
const OutputLabel = "Posted message timestamp"

// Input is one stored input value
type Input struct {
	Value string `json:"value"`
}

// Inputs is the serialized configuration of a step instance as stored by the host
type Inputs map[string]Input

// Lookup returns the stored value of key and whether it is present
func (in Inputs) Lookup(key string) (string, bool) {
	v, ok := in[key]
	return v.Value, ok
}

// Output declares one named value produced by the step
type Output struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// Configuration is what the save phase hands back to the host
type Configuration struct {
	Inputs  Inputs
	Outputs []Output
}

// StepConfiguration is the decoded configuration used by the execute phase
type StepConfiguration struct {
	ChannelIDs  []string
	Query       string
	NumArticles int
}

// ExecutionOutputs maps a channel id to the timestamp of the last message posted there
type ExecutionOutputs map[string]string

// SplitChannels splits a stored comma-joined channel list, dropping empty entries
func SplitChannels(joined string) []string {
	return lo.Compact(strings.Split(joined, ","))
}

// ParseConfiguration decodes stored inputs. The query may be empty; the
// article count and at least one channel are required.
func ParseConfiguration(inputs Inputs) (StepConfiguration, error) {
	query, _ := inputs.Lookup(InputQuery)

	rawNum, ok := inputs.Lookup(InputNumArticles)
	if !ok || rawNum == "" {
		return StepConfiguration{}, oops.With("input", InputNumArticles).Wrap(errors.ErrMissingInput)
	}
	num, err := strconv.Atoi(rawNum)
	if err != nil {
		return StepConfiguration{}, oops.With("input", InputNumArticles).Wrapf(err, "invalid article count %q", rawNum)
	}
	if num < 1 {
		return StepConfiguration{}, oops.With("input", InputNumArticles).Errorf("article count must be positive, got %d", num)
	}

	joined, ok := inputs.Lookup(InputChannelIDs)
	channels := SplitChannels(joined)
	if !ok || len(channels) == 0 {
		return StepConfiguration{}, oops.With("input", InputChannelIDs).Wrap(errors.ErrMissingInput)
	}

	return StepConfiguration{
		ChannelIDs:  channels,
		Query:       query,
		NumArticles: num,
	}, nil
}
