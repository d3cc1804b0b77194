package slack

import (
	articleDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/article/domain"
	stepDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/step/domain"
	"github.com/slack-go/slack"
)

// actionID is the single action id used by every form element
const actionID = "_"

// ToBlockKit converts message blocks into Block Kit blocks
func ToBlockKit(blocks []articleDomain.Block) []slack.Block {
	out := make([]slack.Block, 0, len(blocks))
	for _, b := range blocks {
		switch b.Kind {
		case articleDomain.BlockKindHeader:
			out = append(out, slack.NewHeaderBlock(plainText(b.Text)))
		case articleDomain.BlockKindContext:
			out = append(out, slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType, b.Text, false, false)))
		case articleDomain.BlockKindSection:
			var accessory *slack.Accessory
			if b.Accessory != nil {
				accessory = slack.NewAccessory(slack.NewImageBlockElement(b.Accessory.URL, b.Accessory.AltText))
			}
			out = append(out, slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, b.Text, false, false), nil, accessory))
		}
	}
	return out
}

// FormToBlockKit converts the step configuration form into input blocks
func FormToBlockKit(form stepDomain.Form) []slack.Block {
	out := make([]slack.Block, 0, len(form))
	for _, field := range form {
		var element slack.BlockElement
		switch field.Kind {
		case stepDomain.FieldKindRadioButtons:
			options := make([]*slack.OptionBlockObject, 0, len(field.Options))
			for _, o := range field.Options {
				options = append(options, optionObject(o))
			}
			radio := slack.NewRadioButtonsBlockElement(actionID, options...)
			if field.InitialOption != nil {
				radio.InitialOption = optionObject(*field.InitialOption)
			}
			element = radio
		case stepDomain.FieldKindMultiChannelsSelect:
			sel := slack.NewOptionsMultiSelectBlockElement(slack.MultiOptTypeChannels, placeholder(field.Placeholder), actionID)
			sel.InitialChannels = field.InitialChannels
			element = sel
		case stepDomain.FieldKindPlainTextInput:
			input := slack.NewPlainTextInputBlockElement(placeholder(field.Placeholder), actionID)
			input.InitialValue = field.InitialValue
			element = input
		default:
			continue
		}

		out = append(out, &slack.InputBlock{
			Type:     slack.MBTInput,
			BlockID:  field.BlockID,
			Label:    plainText(field.Label),
			Element:  element,
			Optional: field.Optional,
		})
	}
	return out
}

// SubmittedValues reads the workflow step form state. Every block holds a
// single element under actionID; its type decides the value shape.
func SubmittedValues(state *slack.ViewState) stepDomain.SubmittedValues {
	values := stepDomain.SubmittedValues{}
	if state == nil {
		return values
	}

	for blockID, actions := range state.Values {
		action, ok := actions[actionID]
		if !ok {
			continue
		}

		switch action.Type {
		case "multi_channels_select":
			if action.SelectedChannels != nil {
				values[blockID] = stepDomain.ListValue(action.SelectedChannels)
			}
		case "radio_buttons":
			if action.SelectedOption.Value != "" {
				values[blockID] = stepDomain.OptionValue(action.SelectedOption.Value)
			}
		case "plain_text_input":
			if action.Value != "" {
				values[blockID] = stepDomain.TextValue(action.Value)
			}
		}
	}
	return values
}

// ToWorkflowInputs converts stored inputs into the Slack representation
func ToWorkflowInputs(inputs stepDomain.Inputs) *slack.WorkflowStepInputs {
	out := make(slack.WorkflowStepInputs, len(inputs))
	for key, input := range inputs {
		out[key] = slack.WorkflowStepInputElement{Value: input.Value}
	}
	return &out
}

// FromWorkflowInputs converts Slack step inputs into stored inputs
func FromWorkflowInputs(inputs *slack.WorkflowStepInputs) stepDomain.Inputs {
	out := stepDomain.Inputs{}
	if inputs == nil {
		return out
	}
	for key, input := range *inputs {
		out[key] = stepDomain.Input{Value: input.Value}
	}
	return out
}

// ToWorkflowOutputs converts declared outputs into the Slack representation
func ToWorkflowOutputs(outputs []stepDomain.Output) *[]slack.WorkflowStepOutput {
	out := make([]slack.WorkflowStepOutput, 0, len(outputs))
	for _, o := range outputs {
		out = append(out, slack.WorkflowStepOutput{Name: o.Name, Type: o.Type, Label: o.Label})
	}
	return &out
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, false, false)
}

func placeholder(text string) *slack.TextBlockObject {
	if text == "" {
		return nil
	}
	return plainText(text)
}

func optionObject(o stepDomain.Option) *slack.OptionBlockObject {
	return slack.NewOptionBlockObject(o.Value, plainText(o.Text), nil)
}
