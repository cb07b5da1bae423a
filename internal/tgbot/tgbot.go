package tgbot

import (
	"log/slog"
	"time"

	"book_tracker_tgbot/config"
	"book_tracker_tgbot/internal/transport/telegram"
	customMW "book_tracker_tgbot/internal/transport/telegram/middleware"

	tele "gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"
)

type TGBot struct {
	bot  *tele.Bot
	cfg  *config.Config
	ctrl *telegram.Controller
}

func New(cfg *config.Config, ctrl *telegram.Controller) *TGBot {
	settings := tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &tele.LongPoller{Timeout: time.Duration(cfg.Telegram.UpdTimeout) * time.Second},
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		slog.Error("error while tele.NewBot", slog.String("err", err.Error()))
		panic(err)
	}

	return &TGBot{bot: b, cfg: cfg, ctrl: ctrl}
}

func (b *TGBot) Start() {
	b.bot.Use(
		middleware.Recover(),
		customMW.Logger(),
		customMW.RateLimit(b.cfg.RateLimit, b.ctrl.RateLimited),
		customMW.ChatLock(),
	)

	b.setupRoutes()

	err := b.bot.SetCommands([]tele.Command{
		{Text: "start", Description: "Главное меню"},
		{Text: "books", Description: "Мои книги"},
		{Text: "stats", Description: "Статистика чтения"},
		{Text: "help", Description: "Помощь"},
	})
	if err != nil {
		slog.Warn("failed to set bot commands", slog.String("err", err.Error()))
	}

	go b.bot.Start()
	slog.Info("tgbot started!")
}

func (b *TGBot) Stop() {
	slog.Info("start stopping tgbot")
	b.bot.Stop()
	slog.Info("tgbot stopped")
}

func (b *TGBot) setupRoutes() {
	// commands are parsed by the dialogue controller together with plain text
	b.bot.Handle("/start", b.ctrl.OnText)
	b.bot.Handle("/help", b.ctrl.OnText)
	b.bot.Handle("/books", b.ctrl.OnText)
	b.bot.Handle("/stats", b.ctrl.OnText)

	b.bot.Handle(tele.OnText, b.ctrl.OnText)

	b.bot.Handle(tele.OnCallback, b.ctrl.OnCallback)
}
