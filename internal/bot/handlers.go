package bot

import (
	"bytes"
	"context"
	"math/rand/v2"
	"strings"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"oraclebot/internal/config"
	"oraclebot/internal/picker"
	"oraclebot/internal/quotes"
)

const (
	randomButton = "🎲 Random"
	backButton   = "⬅️ Back"

	choosePrompt    = "Choose a category:"
	chooseSubPrompt = "Choose a subcategory 🎥"
)

func handleStart(
	ctx context.Context,
	tg *tbot.Bot,
	update *models.Update,
	catalog *quotes.Catalog,
	log *zerolog.Logger,
) {
	if update.Message == nil {
		return
	}

	log.Info().Int64("chat_id", update.Message.Chat.ID).Msg("start command")

	tg.SendMessage(ctx, &tbot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "Hi! 💫 I'm your daily oracle.\n" + choosePrompt,
		ReplyMarkup: mainKeyboard(catalog),
	})
}

func handleMessage(
	ctx context.Context,
	tg *tbot.Bot,
	update *models.Update,
	catalog *quotes.Catalog,
	pk *picker.Picker,
	cfg *config.Config,
	log *zerolog.Logger,
) {
	// Guard against nil message
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID

	// Guard against nil user
	if update.Message.From == nil {
		log.Warn().Int64("chat_id", chatID).Msg("received message without user info")
		return
	}

	userID := update.Message.From.ID
	text := update.Message.Text

	switch {
	case text == backButton:
		tg.SendMessage(ctx, &tbot.SendMessageParams{
			ChatID:      chatID,
			Text:        choosePrompt,
			ReplyMarkup: mainKeyboard(catalog),
		})
		return

	case text == randomButton:
		pool := catalog.RandomPool()
		if len(pool) == 0 {
			break
		}
		cat := pool[rand.IntN(len(pool))]
		sendCategory(ctx, tg, chatID, userID, cat, "", pk, cfg, log)
		return
	}

	if cat, ok := catalog.ByButton(text); ok {
		if len(cat.Subtags) > 0 {
			tg.SendMessage(ctx, &tbot.SendMessageParams{
				ChatID:      chatID,
				Text:        chooseSubPrompt,
				ReplyMarkup: subKeyboard(cat),
			})
			return
		}
		sendCategory(ctx, tg, chatID, userID, cat, "", pk, cfg, log)
		return
	}

	if cat, tag, ok := catalog.BySubtagButton(text); ok {
		sendCategory(ctx, tg, chatID, userID, cat, tag, pk, cfg, log)
		return
	}

	// Anything else gets the menu back.
	tg.SendMessage(ctx, &tbot.SendMessageParams{
		ChatID:      chatID,
		Text:        choosePrompt,
		ReplyMarkup: mainKeyboard(catalog),
	})
}

func sendCategory(
	ctx context.Context,
	tg *tbot.Bot,
	chatID int64,
	userID int64,
	cat quotes.Category,
	tag string,
	pk *picker.Picker,
	cfg *config.Config,
	log *zerolog.Logger,
) {
	key := cat.StateKey(tag)

	candidates := cat.Candidates(cfg.QuotesDir, tag)
	quote := pk.PickQuote(userID, key, candidates)

	log.Info().
		Int64("user_id", userID).
		Str("category", key).
		Msg("quote picked")

	caption := captionFor(cat, quote)

	img := pk.PickImage(userID, key, cat.ImageDir(cfg.ImagesDir, tag))
	if img != nil {
		_, err := tg.SendPhoto(ctx, &tbot.SendPhotoParams{
			ChatID: chatID,
			Photo: &models.InputFileUpload{
				Filename: img.Name,
				Data:     bytes.NewReader(img.Data),
			},
			Caption: caption,
		})
		if err == nil {
			return
		}
		log.Error().Err(err).Int64("chat_id", chatID).Msg("unable to send photo, falling back to text")
	}

	tg.SendMessage(ctx, &tbot.SendMessageParams{
		ChatID: chatID,
		Text:   caption,
	})
}

// captionFor prefixes the quote with the category's emoji, taken from the
// keyboard label.
func captionFor(cat quotes.Category, quote string) string {
	fields := strings.Fields(cat.Button)
	if len(fields) == 0 {
		return quote
	}
	return fields[0] + " " + quote
}

func mainKeyboard(catalog *quotes.Catalog) *models.ReplyKeyboardMarkup {
	labels := make([]string, 0, len(catalog.Categories)+1)
	for _, cat := range catalog.Categories {
		labels = append(labels, cat.Button)
	}
	if len(catalog.RandomPool()) > 0 {
		labels = append(labels, randomButton)
	}
	return &models.ReplyKeyboardMarkup{
		Keyboard:       keyboardRows(labels, 2),
		ResizeKeyboard: true,
	}
}

func subKeyboard(cat quotes.Category) *models.ReplyKeyboardMarkup {
	rows := keyboardRows(cat.Subtags, 2)
	rows = append(rows, []models.KeyboardButton{{Text: backButton}})
	return &models.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: true,
	}
}

func keyboardRows(labels []string, perRow int) [][]models.KeyboardButton {
	var rows [][]models.KeyboardButton
	for i := 0; i < len(labels); i += perRow {
		end := min(i+perRow, len(labels))
		row := make([]models.KeyboardButton, 0, perRow)
		for _, label := range labels[i:end] {
			row = append(row, models.KeyboardButton{Text: label})
		}
		rows = append(rows, row)
	}
	return rows
}
