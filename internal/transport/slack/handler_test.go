package slack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/google/go-cmp/cmp"
	articleDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/article/domain"
	messageDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/message/domain"
	stepDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/step/domain"
	stepService "github.com/reshetovitsme/news-workflow-bot/internal/modules/step/service"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

type fakeAPI struct {
	fakePoster

	openedTrigger string
	openedView    slack.ModalViewRequest
	publishedUser string
	savedEditID   string
	savedInputs   *slack.WorkflowStepInputs
	savedOutputs  *[]slack.WorkflowStepOutput
	saveErr       error
	completedID   string
	completed     int
	failedID      string
	failedMessage string
}

func (f *fakeAPI) OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error) {
	f.openedTrigger = triggerID
	f.openedView = view
	return &slack.ViewResponse{}, nil
}

func (f *fakeAPI) PublishViewContext(ctx context.Context, userID string, view slack.HomeTabViewRequest, hash string) (*slack.ViewResponse, error) {
	f.publishedUser = userID
	return &slack.ViewResponse{}, nil
}

func (f *fakeAPI) SaveWorkflowStepConfigurationContext(ctx context.Context, workflowStepEditID string, inputs *slack.WorkflowStepInputs, outputs *[]slack.WorkflowStepOutput) error {
	f.savedEditID = workflowStepEditID
	f.savedInputs = inputs
	f.savedOutputs = outputs
	return f.saveErr
}

func (f *fakeAPI) WorkflowStepCompleted(workflowStepExecuteID string, options ...slack.WorkflowStepCompletedRequestOption) error {
	f.completedID = workflowStepExecuteID
	f.completed++
	return nil
}

func (f *fakeAPI) WorkflowStepFailed(workflowStepExecuteID string, errorMessage string) error {
	f.failedID = workflowStepExecuteID
	f.failedMessage = errorMessage
	return nil
}

type fakeFetcher struct {
	articles []articleDomain.Article
	err      error
}

func (f *fakeFetcher) FetchArticles(ctx context.Context, query string, maxCount int) ([]articleDomain.Article, error) {
	return f.articles, f.err
}

type recordingPoster struct {
	posted []string
}

func (p *recordingPoster) Post(ctx context.Context, channelID string, msg messageDomain.Outgoing) (string, error) {
	p.posted = append(p.posted, channelID)
	return "ts-" + channelID, nil
}

func newTestHandler(fetcher *fakeFetcher) (*Handler, *fakeAPI, *recordingPoster) {
	api := &fakeAPI{}
	poster := &recordingPoster{}
	return New(api, nil, stepService.New(fetcher), poster), api, poster
}

func TestHandleWorkflowStepEdit(t *testing.T) {
	h, api, _ := newTestHandler(&fakeFetcher{})

	payload := h.HandleInteraction(context.Background(), slack.InteractionCallback{
		Type:       slack.InteractionTypeWorkflowStepEdit,
		CallbackID: stepDomain.CallbackID,
		TriggerID:  "trigger-1",
		WorkflowStep: slack.InteractionWorkflowStep{
			Inputs: &slack.WorkflowStepInputs{
				stepDomain.InputNumArticles: {Value: "5"},
				stepDomain.InputChannelIDs:  {Value: "C1"},
			},
		},
	})

	assert.Equal(t, nil, payload)
	assert.Equal(t, "trigger-1", api.openedTrigger)
	assert.Equal(t, workflowStepView, api.openedView.Type)
	assert.Equal(t, stepDomain.CallbackID, api.openedView.CallbackID)
	assert.Equal(t, 3, len(api.openedView.Blocks.BlockSet))

	radio := api.openedView.Blocks.BlockSet[0].(*slack.InputBlock).Element.(*slack.RadioButtonsBlockElement)
	assert.Equal(t, "5", radio.InitialOption.Value)
}

func TestHandleInteractionIgnoresOtherCallbacks(t *testing.T) {
	h, api, _ := newTestHandler(&fakeFetcher{})

	payload := h.HandleInteraction(context.Background(), slack.InteractionCallback{
		Type:       slack.InteractionTypeWorkflowStepEdit,
		CallbackID: "other_step",
		TriggerID:  "trigger-1",
	})

	assert.Equal(t, nil, payload)
	assert.Equal(t, "", api.openedTrigger)
}

func saveCallback() slack.InteractionCallback {
	callback := slack.InteractionCallback{
		Type: slack.InteractionTypeViewSubmission,
		WorkflowStep: slack.InteractionWorkflowStep{
			WorkflowStepEditID: "edit-1",
		},
	}
	callback.View.Type = workflowStepView
	callback.View.CallbackID = stepDomain.CallbackID
	callback.View.State = &slack.ViewState{
		Values: map[string]map[string]slack.BlockAction{
			stepDomain.InputChannelIDs: {
				actionID: {Type: "multi_channels_select", SelectedChannels: []string{"C1", "C2"}},
			},
			stepDomain.InputNumArticles: {
				actionID: {Type: "radio_buttons", SelectedOption: slack.OptionBlockObject{Value: "3"}},
			},
			stepDomain.InputQuery: {
				actionID: {Type: "plain_text_input", Value: "tech"},
			},
		},
	}
	return callback
}

func TestHandleViewSubmission(t *testing.T) {
	h, api, _ := newTestHandler(&fakeFetcher{})

	payload := h.HandleInteraction(context.Background(), saveCallback())

	assert.Equal(t, nil, payload)
	assert.Equal(t, "edit-1", api.savedEditID)
	want := slack.WorkflowStepInputs{
		stepDomain.InputChannelIDs:  {Value: "C1,C2"},
		stepDomain.InputNumArticles: {Value: "3"},
		stepDomain.InputQuery:       {Value: "tech"},
	}
	if diff := cmp.Diff(want, *api.savedInputs); diff != "" {
		t.Errorf("saved inputs mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, len(*api.savedOutputs))
	assert.Equal(t, "C2", (*api.savedOutputs)[1].Name)
}

func TestHandleViewSubmissionSaveError(t *testing.T) {
	h, api, _ := newTestHandler(&fakeFetcher{})
	api.saveErr = errors.New("invalid_arguments")

	payload := h.HandleInteraction(context.Background(), saveCallback())

	response, ok := payload.(*slack.ViewSubmissionResponse)
	assert.Equal(t, true, ok)
	assert.Equal(t, slack.RAErrors, response.ResponseAction)
	assert.Equal(t, "Could not save the step: invalid_arguments", response.Errors[stepDomain.InputChannelIDs])
}

func executeEvent(inputs slack.WorkflowStepInputs) slackevents.EventsAPIEvent {
	return slackevents.EventsAPIEvent{
		Type: slackevents.CallbackEvent,
		InnerEvent: slackevents.EventsAPIInnerEvent{
			Type: "workflow_step_execute",
			Data: &slackevents.WorkflowStepExecuteEvent{
				CallbackID: stepDomain.CallbackID,
				WorkflowStep: slackevents.EventWorkflowStep{
					WorkflowStepExecuteID: "exec-1",
					Inputs:                &inputs,
				},
			},
		},
	}
}

func TestHandleWorkflowStepExecute(t *testing.T) {
	fetcher := &fakeFetcher{articles: []articleDomain.Article{{
		Title:       "Title",
		Description: "Body",
		URL:         "https://example.com/a",
		PublishedAt: time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
	}}}
	h, api, poster := newTestHandler(fetcher)

	h.HandleEventsAPI(context.Background(), executeEvent(slack.WorkflowStepInputs{
		stepDomain.InputChannelIDs:  {Value: "C1,C2"},
		stepDomain.InputNumArticles: {Value: "1"},
		stepDomain.InputQuery:       {Value: "tech"},
	}))

	assert.Equal(t, []string{"C1", "C2"}, poster.posted)
	assert.Equal(t, "exec-1", api.completedID)
	assert.Equal(t, 1, api.completed)
	assert.Equal(t, "", api.failedID)
}

func TestHandleWorkflowStepExecuteFailure(t *testing.T) {
	h, api, poster := newTestHandler(&fakeFetcher{err: errors.New("connection refused")})

	h.HandleEventsAPI(context.Background(), executeEvent(slack.WorkflowStepInputs{
		stepDomain.InputChannelIDs:  {Value: "C1"},
		stepDomain.InputNumArticles: {Value: "1"},
	}))

	assert.Equal(t, 0, len(poster.posted))
	assert.Equal(t, 0, api.completed)
	assert.Equal(t, "exec-1", api.failedID)
	assert.Equal(t, "Failed to fetch news articles (connection refused)", api.failedMessage)
}

func TestHandleAppHomeOpened(t *testing.T) {
	h, api, _ := newTestHandler(&fakeFetcher{})

	h.HandleEventsAPI(context.Background(), slackevents.EventsAPIEvent{
		Type: slackevents.CallbackEvent,
		InnerEvent: slackevents.EventsAPIInnerEvent{
			Data: &slackevents.AppHomeOpenedEvent{User: "U1"},
		},
	})

	assert.Equal(t, "U1", api.publishedUser)
}

func TestHandleGreeting(t *testing.T) {
	h, api, _ := newTestHandler(&fakeFetcher{})

	for _, ev := range []*slackevents.MessageEvent{
		{Channel: "C1", Text: "well hello bot"},
		{Channel: "C2", Text: "hello", BotID: "B1"},
		{Channel: "C3", Text: "goodbye"},
	} {
		h.HandleEventsAPI(context.Background(), slackevents.EventsAPIEvent{
			Type:       slackevents.CallbackEvent,
			InnerEvent: slackevents.EventsAPIInnerEvent{Data: ev},
		})
	}

	assert.Equal(t, []string{"C1"}, api.channels)
	_, values, err := slack.UnsafeApplyMsgOptions("xoxb-test", "C1", "https://slack.com/api/", api.options[0]...)
	assert.Equal(t, nil, err)
	assert.Equal(t, "Hello there!", values.Get("text"))
}
