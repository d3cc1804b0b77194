package slack

import (
	"context"
	"log/slog"
	"strings"

	stepDomain "github.com/reshetovitsme/news-workflow-bot/internal/modules/step/domain"
	stepService "github.com/reshetovitsme/news-workflow-bot/internal/modules/step/service"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

const workflowStepView slack.ViewType = "workflow_step"

// API is the subset of the Slack Web API used by the handler
type API interface {
	OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
	PublishViewContext(ctx context.Context, userID string, view slack.HomeTabViewRequest, hash string) (*slack.ViewResponse, error)
	SaveWorkflowStepConfigurationContext(ctx context.Context, workflowStepEditID string, inputs *slack.WorkflowStepInputs, outputs *[]slack.WorkflowStepOutput) error
	WorkflowStepCompleted(workflowStepExecuteID string, options ...slack.WorkflowStepCompletedRequestOption) error
	WorkflowStepFailed(workflowStepExecuteID string, errorMessage string) error
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Handler dispatches Socket Mode events to the news workflow step
type Handler struct {
	api    API
	socket *socketmode.Client
	step   stepService.StepCallbacks
	poster stepService.Poster
}

// New creates a new Slack handler
func New(api API, socket *socketmode.Client, step stepService.StepCallbacks, poster stepService.Poster) *Handler {
	return &Handler{
		api:    api,
		socket: socket,
		step:   step,
		poster: poster,
	}
}

// Run connects to Slack and handles events until ctx is cancelled
func (h *Handler) Run(ctx context.Context) error {
	go h.dispatch(ctx)
	return h.socket.RunContext(ctx)
}

func (h *Handler) dispatch(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-h.socket.Events:
			if !ok {
				return
			}
			h.handleEvent(ctx, evt)
		}
	}
}

func (h *Handler) handleEvent(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		slog.Info("Connecting to Slack with Socket Mode")
	case socketmode.EventTypeConnectionError:
		slog.Error("Slack connection failed", "data", evt.Data)
	case socketmode.EventTypeConnected:
		slog.Info("Connected to Slack with Socket Mode")
	case socketmode.EventTypeEventsAPI:
		event, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			slog.Debug("Ignored unexpected events API payload", "type", evt.Type)
			return
		}
		h.socket.Ack(*evt.Request)
		go h.HandleEventsAPI(ctx, event)
	case socketmode.EventTypeInteractive:
		callback, ok := evt.Data.(slack.InteractionCallback)
		if !ok {
			slog.Debug("Ignored unexpected interactive payload", "type", evt.Type)
			return
		}
		if payload := h.HandleInteraction(ctx, callback); payload != nil {
			h.socket.Ack(*evt.Request, payload)
			return
		}
		h.socket.Ack(*evt.Request)
	}
}

// HandleInteraction handles the configure and save phases. A non-nil
// result is sent back as the acknowledgment payload.
func (h *Handler) HandleInteraction(ctx context.Context, callback slack.InteractionCallback) any {
	switch {
	case callback.Type == slack.InteractionTypeWorkflowStepEdit && callback.CallbackID == stepDomain.CallbackID:
		h.configure(ctx, callback)
		return nil
	case callback.Type == slack.InteractionTypeViewSubmission && callback.View.Type == workflowStepView && callback.View.CallbackID == stepDomain.CallbackID:
		return h.save(ctx, callback)
	default:
		return nil
	}
}

func (h *Handler) configure(ctx context.Context, callback slack.InteractionCallback) {
	form := h.step.Configure(FromWorkflowInputs(callback.WorkflowStep.Inputs))

	view := slack.ModalViewRequest{
		Type:       workflowStepView,
		CallbackID: stepDomain.CallbackID,
		Blocks:     slack.Blocks{BlockSet: FormToBlockKit(form)},
	}
	if _, err := h.api.OpenViewContext(ctx, callback.TriggerID, view); err != nil {
		slog.Error("Failed to open workflow step configuration", "workflow_id", callback.WorkflowStep.WorkflowID, "error", err)
	}
}

func (h *Handler) save(ctx context.Context, callback slack.InteractionCallback) any {
	cfg := h.step.Save(SubmittedValues(callback.View.State))

	err := h.api.SaveWorkflowStepConfigurationContext(
		ctx,
		callback.WorkflowStep.WorkflowStepEditID,
		ToWorkflowInputs(cfg.Inputs),
		ToWorkflowOutputs(cfg.Outputs),
	)
	if err != nil {
		slog.Error("Failed to save workflow step configuration", "workflow_id", callback.WorkflowStep.WorkflowID, "error", err)
		return slack.NewErrorsViewSubmissionResponse(map[string]string{
			stepDomain.InputChannelIDs: "Could not save the step: " + err.Error(),
		})
	}
	return nil
}

// HandleEventsAPI handles step execution plus the home tab and greeting events
func (h *Handler) HandleEventsAPI(ctx context.Context, event slackevents.EventsAPIEvent) {
	if event.Type != slackevents.CallbackEvent {
		return
	}

	switch ev := event.InnerEvent.Data.(type) {
	case *slackevents.WorkflowStepExecuteEvent:
		if ev.CallbackID == stepDomain.CallbackID {
			h.execute(ctx, ev.WorkflowStep)
		}
	case *slackevents.AppHomeOpenedEvent:
		h.publishHome(ctx, ev.User)
	case *slackevents.MessageEvent:
		if ev.BotID == "" && ev.SubType == "" && strings.Contains(strings.ToLower(ev.Text), "hello") {
			if _, _, err := h.api.PostMessageContext(ctx, ev.Channel, slack.MsgOptionText("Hello there!", false)); err != nil {
				slog.Error("Failed to reply to greeting", "channel_id", ev.Channel, "error", err)
			}
		}
	}
}

func (h *Handler) execute(ctx context.Context, step slackevents.EventWorkflowStep) {
	outputs, err := h.step.Execute(ctx, FromWorkflowInputs(step.Inputs), h.poster)
	if err != nil {
		slog.Error("Workflow step failed", "workflow_step_execute_id", step.WorkflowStepExecuteID, "error", err)
		if err := h.api.WorkflowStepFailed(step.WorkflowStepExecuteID, err.Error()); err != nil {
			slog.Error("Failed to report workflow step failure", "workflow_step_execute_id", step.WorkflowStepExecuteID, "error", err)
		}
		return
	}

	if err := h.api.WorkflowStepCompleted(step.WorkflowStepExecuteID, slack.WorkflowStepCompletedRequestOptionOutput(outputs)); err != nil {
		slog.Error("Failed to complete workflow step", "workflow_step_execute_id", step.WorkflowStepExecuteID, "error", err)
		return
	}
	slog.Info("Workflow step completed", "workflow_step_execute_id", step.WorkflowStepExecuteID, "channels", len(outputs))
}

func (h *Handler) publishHome(ctx context.Context, userID string) {
	view := slack.HomeTabViewRequest{
		Type:       slack.VTHomeTab,
		CallbackID: "home_view",
		Blocks: slack.Blocks{BlockSet: []slack.Block{
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, "*Welcome to the _News Workflow Step_* :newspaper:", false, false), nil, nil),
			slack.NewDividerBlock(),
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType,
				"Add the *Fetch news* step to a workflow in Workflow Builder to post the latest articles to your channels. "+
					"Separate multiple search terms with commas, or leave the query blank for top headlines.", false, false), nil, nil),
		}},
	}
	if _, err := h.api.PublishViewContext(ctx, userID, view, ""); err != nil {
		slog.Error("Error publishing home tab", "user_id", userID, "error", err)
	}
}
