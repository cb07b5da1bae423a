package telegram

import (
	"context"
	"log/slog"
	"time"

	"book_tracker_tgbot/internal/controllers"
	"book_tracker_tgbot/internal/converter/responses"
	"book_tracker_tgbot/internal/converter/telebotConverter"
	"book_tracker_tgbot/internal/model"
	"book_tracker_tgbot/utils"

	tele "gopkg.in/telebot.v4"
)

type DialogueController interface {
	HandleText(ctx context.Context, ev controllers.Event) (model.Reply, error)
	HandleCallback(ctx context.Context, ev controllers.Event) (model.Reply, error)
}

// Controller adapts telebot updates to the dialogue controller and sends its replies back.
type Controller struct {
	dialogue DialogueController
}

func NewController(dialogue DialogueController) *Controller {
	return &Controller{dialogue: dialogue}
}

func eventFromContext(c tele.Context) controllers.Event {
	ev := controllers.Event{}

	if chat := c.Chat(); chat != nil {
		ev.ChatID = chat.ID
	}
	if sender := c.Sender(); sender != nil {
		ev.User = model.User{
			TelegramID: sender.ID,
			Username:   sender.Username,
			FirstName:  sender.FirstName,
			LastName:   sender.LastName,
		}
	} else {
		ev.User = model.User{TelegramID: ev.ChatID}
	}
	if cb := c.Callback(); cb != nil {
		ev.Data = cb.Data
		if cb.Message != nil {
			ev.MessageID = cb.Message.ID
		}
	} else {
		ev.Text = c.Text()
	}

	return ev
}

func (ctrl *Controller) sendAutoDeleteMsg(c tele.Context, text string) error {
	msg, err := c.Bot().Send(c.Chat(), text)
	if err != nil {
		return err
	}

	time.AfterFunc(5*time.Second, func() {
		c.Bot().Delete(msg)
	})
	return nil
}

// RateLimited tells the chat its update was dropped.
func (ctrl *Controller) RateLimited(c tele.Context) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: tooManyRequests})
	}
	return ctrl.sendAutoDeleteMsg(c, tooManyRequests)
}

func (ctrl *Controller) OnText(c tele.Context) error {
	op := "Controller.OnText"
	ctx := utils.CreateCtxWithRqID(c)

	res, err := ctrl.dialogue.HandleText(ctx, eventFromContext(c))
	if err != nil {
		slog.Error("got error from dialogue.HandleText", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.send(c, responses.InternalError())
	}

	return ctrl.reply(ctx, c, res)
}

func (ctrl *Controller) OnCallback(c tele.Context) error {
	op := "Controller.OnCallback"
	ctx := utils.CreateCtxWithRqID(c)
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := c.Respond(); err != nil {
		slog.Warn("failed to answer callback", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	res, err := ctrl.dialogue.HandleCallback(ctx, eventFromContext(c))
	if err != nil {
		slog.Error("got error from dialogue.HandleCallback", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return ctrl.send(c, responses.InternalError())
	}

	return ctrl.reply(ctx, c, res)
}

// reply sends the messages in order, then removes the pressed message.
func (ctrl *Controller) reply(ctx context.Context, c tele.Context, res model.Reply) error {
	op := "Controller.reply"

	for _, msg := range res.Messages {
		if err := ctrl.send(c, msg); err != nil {
			return err
		}
	}

	if res.DeleteMessageID != 0 && c.Chat() != nil {
		err := c.Bot().Delete(&tele.Message{ID: res.DeleteMessageID, Chat: c.Chat()})
		if err != nil {
			// the message may be already gone or too old to delete
			slog.Warn("failed to delete message", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()))
		}
	}

	return nil
}

func (ctrl *Controller) send(c tele.Context, msg model.OutMessage) error {
	return c.Send(msg.Text, telebotConverter.SendOptions(msg)...)
}
