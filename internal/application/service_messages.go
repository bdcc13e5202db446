package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/freshpantry/stockroom/internal/domain"
	"github.com/freshpantry/stockroom/internal/ports"
)

func (s *Service) SendMessage(ctx context.Context, req SendMessageRequest) (MessageResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		return MessageResponse{}, fmt.Errorf("%w: name and message are required", domain.ErrInvalidInput)
	}
	message, err := s.messages.Create(ctx, domain.Message{
		Name:   strings.TrimSpace(req.Name),
		Email:  strings.TrimSpace(req.Email),
		Body:   req.Message,
		SentAt: domain.Today(s.nowFn()),
	})
	if err != nil {
		return MessageResponse{}, err
	}
	s.logger.InfoContext(ctx, "message received", "operation", "send_message", "from", message.Name)
	return toMessageResponse(message), nil
}

func (s *Service) ListMessages(ctx context.Context, claims ports.AuthClaims) ([]MessageResponse, error) {
	if !claims.IsAdmin {
		return nil, domain.ErrForbidden
	}
	messages, err := s.messages.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(m))
	}
	return out, nil
}

func toMessageResponse(m domain.Message) MessageResponse {
	return MessageResponse{
		MessageID: m.MessageID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Body,
		SentAt:    m.SentAt,
	}
}
