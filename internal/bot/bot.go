package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/store"
)

// Bot is a read-only Telegram companion: it renders the same projections the
// web client sees, it never mutates state.
type Bot struct {
	config    *Config
	gateway   *store.Gateway
	api       *tgbotapi.BotAPI
	scheduler *gocron.Scheduler
}

func New(config *Config, gateway *store.Gateway) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(config.Bot.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	return &Bot{
		config:    config,
		gateway:   gateway,
		api:       api,
		scheduler: gocron.NewScheduler(time.Local),
	}, nil
}

func (b *Bot) Start() error {
	if len(b.config.Bot.DigestChatIDs) > 0 {
		_, err := b.scheduler.Every(1).Day().At(b.config.Bot.DigestTime).Do(b.sendDailyDigest)
		if err != nil {
			return fmt.Errorf("failed to schedule daily digest: %w", err)
		}
		b.scheduler.StartAsync()
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case update := <-updates:
			if update.Message == nil {
				continue
			}

			go b.handleMessage(update.Message)

		case <-sigChan:
			logger.Info.Println("Shutting down bot...")
			b.scheduler.Stop()
			return nil
		}
	}
}

func (b *Bot) sendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

func (b *Bot) sendDailyDigest() {
	text, err := b.dueDigest()
	if err != nil {
		logger.Error.Printf("Failed to build daily digest: %v", err)
		return
	}

	for _, chatID := range b.config.Bot.DigestChatIDs {
		if err := b.sendMessage(chatID, text); err != nil {
			logger.Error.Printf("Failed to send digest to chat %d: %v", chatID, err)
		}
	}
}
