package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	app "seed-segmenter/internal/application"
	"seed-segmenter/internal/container"
	"seed-segmenter/internal/domain/entity"
	"seed-segmenter/internal/infrastructure/imageio"
	"seed-segmenter/internal/logger"
)

const (
	msgStart = `👋 Привет! Я помогаю выделять объекты на фотографиях методом watershed.

📸 Отправьте фото, затем отметьте точки объекта и фона.

📋 Команды:
/fg x y — точка объекта (синяя)
/bg x y — точка фона (красная)
/segment — запустить сегментацию
/help — справка
/cancel — забыть изображение и маркеры`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото (лучше файлом, без сжатия)
2️⃣ Отметьте объект: /fg 120 80
3️⃣ Отметьте фон: /bg 10 10
4️⃣ Отправьте /segment — получите карту областей

💡 Координаты считаются в пикселях от левого верхнего угла.

📋 Команды:
/fg x y, /bg x y, /segment, /cancel`

	msgSendPhoto       = "📸 Сначала отправьте фото для разметки."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgCancelled       = "❌ Изображение и маркеры удалены. Отправьте новое фото."
	msgBadCoordinates  = "⚠️ Укажите координаты: /fg x y или /bg x y."
	msgOutOfBounds     = "⚠️ Точка (%d, %d) за пределами изображения %dx%d."
	msgNoMarkers       = "⚠️ Поставьте хотя бы один маркер перед сегментацией."
	msgLoaded          = "✅ Изображение %dx%d загружено. Ставьте маркеры: /fg x y, /bg x y."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте другое фото."
	msgSegmentError    = "⚠️ Сегментация не удалась."
)

// sender — часть BotAPI, через которую уходят ответы.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot представляет Telegram-бота
type Bot struct {
	api          *tgbotapi.BotAPI
	out          sender
	fetch        func(fileID string) ([]byte, error)
	sessions     *app.SessionService
	segmentation *app.SegmentationService
	dispatcher   *app.Dispatcher
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("authorized on telegram", zap.String("account", api.Self.UserName))

	b := newBot(api, c)
	b.api = api
	b.fetch = b.downloadFile
	return b, nil
}

func newBot(out sender, c *container.Container) *Bot {
	return &Bot{
		out:          out,
		sessions:     c.SessionService,
		segmentation: c.SegmentationService,
		dispatcher:   c.Dispatcher,
	}
}

// Run запускает основной цикл обработки сообщений.
// Сообщения обрабатываются строго по одному.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	session, err := b.sessions.Get(ctx, msg.Chat.ID)
	if err != nil {
		logger.Log.Error("get session", zap.Int64("chat", msg.Chat.ID), zap.Error(err))
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, session)
		return
	}

	// Обработка фото и изображений, присланных файлом
	if fileID, ok := imageFileID(msg); ok {
		b.handleImage(ctx, msg, session, fileID)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, session *entity.Session) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "fg", "bg":
		kind := app.LeftClick
		if msg.Command() == "bg" {
			kind = app.RightClick
		}
		x, y, err := parseMarkerArgs(msg.CommandArguments())
		if err != nil {
			b.sendMessage(chatID, msgBadCoordinates)
			return
		}
		b.dispatch(ctx, chatID, session, app.Event{Kind: kind, X: x, Y: y})

	case "segment":
		b.dispatch(ctx, chatID, session, app.Event{Kind: app.SegmentPressed})

	case "cancel":
		if _, err := b.sessions.Cancel(ctx, chatID); err != nil {
			logger.Log.Error("cancel session", zap.Int64("chat", chatID), zap.Error(err))
		}
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// dispatch передаёт событие в таблицу обработчиков и отвечает картинкой.
func (b *Bot) dispatch(ctx context.Context, chatID int64, session *entity.Session, ev app.Event) {
	out, err := b.dispatcher.Dispatch(ctx, session, ev)
	switch {
	case errors.Is(err, entity.ErrNoImage):
		b.sendMessage(chatID, msgSendPhoto)
		return
	case errors.Is(err, entity.ErrOutOfBounds):
		b.sendMessage(chatID, fmt.Sprintf(msgOutOfBounds, ev.X, ev.Y, session.Image.Width, session.Image.Height))
		return
	case errors.Is(err, entity.ErrNoMarkers):
		b.sendMessage(chatID, msgNoMarkers)
		return
	case err != nil:
		logger.Log.Error("handle event", zap.Int64("chat", chatID), zap.Stringer("event", ev.Kind), zap.Error(err))
		b.sendMessage(chatID, msgSegmentError)
		return
	}

	if err := b.sessions.Save(ctx, session); err != nil {
		logger.Log.Error("save session", zap.Int64("chat", chatID), zap.Error(err))
	}

	if out.Labels != nil {
		b.sendImage(chatID, "labels.png", out.Labels.Visualize())
		return
	}
	b.sendImage(chatID, "markers.png", out.Composite.ToRGBA())
}

// handleImage загружает присланное изображение в новый сеанс
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, session *entity.Session, fileID string) {
	chatID := msg.Chat.ID

	data, err := b.fetch(fileID)
	if err != nil {
		logger.Log.Error("download image", zap.Int64("chat", chatID), zap.Error(err))
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	if err := b.segmentation.OpenReader(session, bytes.NewReader(data)); err != nil {
		logger.Log.Warn("decode image", zap.Int64("chat", chatID), zap.Error(err))
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	if err := b.sessions.Save(ctx, session); err != nil {
		logger.Log.Error("save session", zap.Int64("chat", chatID), zap.Error(err))
	}

	b.sendMessage(chatID, fmt.Sprintf(msgLoaded, session.Image.Width, session.Image.Height))
}

// imageFileID выбирает фото с максимальным разрешением или документ-картинку.
func imageFileID(msg *tgbotapi.Message) (string, bool) {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID, true
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return msg.Document.FileID, true
	}
	return "", false
}

// parseMarkerArgs разбирает "x y" из аргументов команды.
func parseMarkerArgs(args string) (int, int, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two coordinates, got %d", len(fields))
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parse x: %w", err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("parse y: %w", err)
	}

	return x, y, nil
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.out.Send(msg); err != nil {
		logger.Log.Error("send message", zap.Int64("chat", chatID), zap.Error(err))
	}
}

// sendImage отправляет картинку в PNG
func (b *Bot) sendImage(chatID int64, name string, img image.Image) {
	var buf bytes.Buffer
	if err := imageio.EncodePNG(&buf, img); err != nil {
		logger.Log.Error("encode image", zap.Int64("chat", chatID), zap.Error(err))
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: buf.Bytes()})
	if _, err := b.out.Send(photo); err != nil {
		logger.Log.Error("send image", zap.Int64("chat", chatID), zap.Error(err))
	}
}
