package telebotConverter

import (
	"testing"

	"book_tracker_tgbot/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

func TestReplyMarkup(t *testing.T) {
	msg := model.OutMessage{
		Text: "text",
		Keyboard: [][]model.Button{
			{{Text: "a", Data: "show_books"}, {Text: "b", Data: "add_book"}},
			{},
			{{Text: "c", Data: "manage_book:3"}},
		},
	}

	markup := ReplyMarkup(msg)

	require.NotNil(t, markup)
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Len(t, markup.InlineKeyboard[0], 2)
	assert.Equal(t, "a", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "manage_book:3", markup.InlineKeyboard[1][0].Data)
}

func TestReplyMarkup_NoButtons(t *testing.T) {
	assert.Nil(t, ReplyMarkup(model.OutMessage{Text: "text"}))

	opts := SendOptions(model.OutMessage{Text: "text"})
	assert.Equal(t, []any{tele.ModeHTML, tele.NoPreview}, opts)
}
