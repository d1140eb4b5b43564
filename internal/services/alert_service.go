package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gopkg.in/gomail.v2"

	"walletvault/internal/utils"
)

// AlertService fans security-relevant events out to the ops channels. Every
// delivery is best-effort: a failed alert is logged and the request that
// triggered it proceeds.
type AlertService interface {
	NotifyLegacyMigration(address string)
	NotifyRecovery(address string)
}

type alertService struct {
	dialer *gomail.Dialer
	from   string
	to     string

	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewAlertService builds the notifier from whatever channels are configured.
// Either channel may be absent; with none configured every notify is a no-op.
func NewAlertService(smtpHost string, smtpPort int, smtpUser, smtpPassword, from, to, botToken string, chatID int64) AlertService {
	s := &alertService{from: from, to: to, chatID: chatID}
	if smtpHost != "" && to != "" {
		s.dialer = gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	}
	if botToken != "" && chatID != 0 {
		bot, err := tgbotapi.NewBotAPI(botToken)
		if err != nil {
			log.Printf("[alerts] telegram bot init failed, channel disabled: %v", err)
		} else {
			s.bot = bot
		}
	}
	return s
}

func (s *alertService) NotifyLegacyMigration(address string) {
	masked := utils.MaskAddress(address)
	s.send(
		"Legacy phrase migration",
		fmt.Sprintf("Wallet %s authenticated with the shared legacy phrase and was migrated to a unique one.", masked),
	)
}

func (s *alertService) NotifyRecovery(address string) {
	masked := utils.MaskAddress(address)
	s.send(
		"Wallet recovery completed",
		fmt.Sprintf("Password reset via recovery phrase for wallet %s.", masked),
	)
}

func (s *alertService) send(subject, body string) {
	if s.dialer != nil {
		m := gomail.NewMessage()
		m.SetHeader("From", s.from)
		m.SetHeader("To", s.to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", body)
		if err := s.dialer.DialAndSend(m); err != nil {
			log.Printf("[alerts][email] send failed: %v", err)
		}
	}
	if s.bot != nil {
		msg := tgbotapi.NewMessage(s.chatID, subject+"\n"+body)
		if _, err := s.bot.Send(msg); err != nil {
			log.Printf("[alerts][telegram] send failed: %v", err)
		}
	}
}
