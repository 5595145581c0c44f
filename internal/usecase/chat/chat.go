package chatUseCase

import (
	"context"
	"time"

	"github.com/campusmatch/campusmatch/internal/entity"
	"github.com/campusmatch/campusmatch/internal/logger"
	matchRepo "github.com/campusmatch/campusmatch/internal/repository/match"
	messageRepo "github.com/campusmatch/campusmatch/internal/repository/message"
)

type IChatUseCase interface {
	// Send appends a message to the match's log. Only members of an
	// active match may send; sending stamps the match's last_message_at.
	Send(ctx context.Context, senderID, matchID uint, content string, msgType entity.MessageType) (*entity.Message, error)

	List(ctx context.Context, userID, matchID uint, limit, offset int) ([]entity.Message, error)

	// MarkRead marks a message read; only the receiver may do it.
	MarkRead(ctx context.Context, userID, messageID uint) error

	// Delete soft-deletes a message; only the sender may do it.
	Delete(ctx context.Context, userID, messageID uint) error
}

type chatUseCase struct {
	matchRepo   matchRepo.IMatchRepo
	messageRepo messageRepo.IMessageRepo
}

func New(matches matchRepo.IMatchRepo, messages messageRepo.IMessageRepo) IChatUseCase {
	return &chatUseCase{
		matchRepo:   matches,
		messageRepo: messages,
	}
}

func (c *chatUseCase) Send(ctx context.Context, senderID, matchID uint, content string, msgType entity.MessageType) (*entity.Message, error) {
	match, err := c.matchRepo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Involves(senderID) {
		return nil, entity.ErrUnauthorized
	}
	if match.Status != entity.MatchMatched || !match.Active {
		return nil, entity.ErrNotFound
	}

	msg := &entity.Message{
		MatchID:    matchID,
		SenderID:   senderID,
		ReceiverID: match.OtherUser(senderID),
		Content:    content,
		Type:       msgType,
	}
	msg, err = c.messageRepo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	if err := c.matchRepo.TouchLastMessage(ctx, matchID, msg.CreatedAt); err != nil {
		logger.Warn("failed to stamp last message time", "match_id", matchID, "err", err)
	}
	return msg, nil
}

func (c *chatUseCase) List(ctx context.Context, userID, matchID uint, limit, offset int) ([]entity.Message, error) {
	match, err := c.matchRepo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Involves(userID) {
		return nil, entity.ErrUnauthorized
	}
	return c.messageRepo.ListByMatch(ctx, matchID, limit, offset)
}

func (c *chatUseCase) MarkRead(ctx context.Context, userID, messageID uint) error {
	msg, err := c.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.ReceiverID != userID {
		return entity.ErrUnauthorized
	}
	if msg.Read {
		return nil
	}
	return c.messageRepo.MarkRead(ctx, messageID, time.Now())
}

func (c *chatUseCase) Delete(ctx context.Context, userID, messageID uint) error {
	msg, err := c.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != userID {
		return entity.ErrUnauthorized
	}
	if msg.Deleted {
		return nil
	}
	return c.messageRepo.SoftDelete(ctx, messageID, time.Now())
}
