package telebotConverter

import (
	"book_tracker_tgbot/internal/model"

	tele "gopkg.in/telebot.v4"
)

// ReplyMarkup builds an inline keyboard for the message, nil when it has no buttons.
func ReplyMarkup(msg model.OutMessage) *tele.ReplyMarkup {
	if len(msg.Keyboard) == 0 {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	menuRows := make([]tele.Row, 0, len(msg.Keyboard))

	for _, buttons := range msg.Keyboard {
		if len(buttons) == 0 {
			continue
		}
		row := make(tele.Row, 0, len(buttons))
		for _, b := range buttons {
			// raw callback data keeps the "command:param" wire format, markup.Data would prefix it
			row = append(row, tele.Btn{Text: b.Text, Data: b.Data})
		}
		menuRows = append(menuRows, row)
	}

	markup.Inline(menuRows...)

	return markup
}

// SendOptions returns the options used for every outgoing message.
func SendOptions(msg model.OutMessage) []any {
	opts := []any{tele.ModeHTML, tele.NoPreview}
	if markup := ReplyMarkup(msg); markup != nil {
		opts = append(opts, markup)
	}
	return opts
}
