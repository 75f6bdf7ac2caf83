package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

// NotifyRentalRequested tells the owner that someone wants to rent their item.
func (n *TelegramNotifier) NotifyRentalRequested(ctx context.Context, owner *domain.User, rental *domain.Rental) {
	n.send(ctx, owner.TelegramChatID, rentalRequestedText(rental))
}

// NotifyRentalStatusChanged tells the renter about the rental's new status.
func (n *TelegramNotifier) NotifyRentalStatusChanged(ctx context.Context, renter *domain.User, rental *domain.Rental) {
	n.send(ctx, renter.TelegramChatID, rentalStatusText(rental))
}

// markdown escapes user-supplied text for ParseMode Markdown.
func markdown(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func rentalRequestedText(r *domain.Rental) string {
	return fmt.Sprintf(
		"*Новая заявка на аренду*\n\n"+"Вещь: %s\n"+"Даты: %s - %s (%d дн.)\n"+"Сумма: %s",
		markdown(r.ItemName),
		r.StartDate.Format("02.01.2006"),
		r.EndDate.Format("02.01.2006"),
		r.TotalDays,
		r.TotalAmount.StringFixed(2),
	)
}

func rentalStatusText(r *domain.Rental) string {
	var title string
	switch r.Status {
	case domain.RentalStatusConfirmed:
		title = "Аренда подтверждена!"
	case domain.RentalStatusCancelled:
		title = "Аренда отменена"
	case domain.RentalStatusCompleted:
		title = "Аренда завершена"
	default:
		title = "Статус аренды изменён"
	}

	return fmt.Sprintf(
		"*%s*\n\n"+"Вещь: %s\n"+"Даты: %s - %s\n"+"Статус: %s",
		title,
		markdown(r.ItemName),
		r.StartDate.Format("02.01.2006"),
		r.EndDate.Format("02.01.2006"),
		r.Status,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
