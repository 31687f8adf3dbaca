package question

import (
	"context"

	"github.com/muhammadheryan/femnest/cmd/config"
	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
	questionrepo "github.com/muhammadheryan/femnest/repository/question"
	"github.com/muhammadheryan/femnest/utils/errors"
	"github.com/muhammadheryan/femnest/utils/logger"
	"github.com/muhammadheryan/femnest/utils/simulate"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type QuestionApp interface {
	Generate(ctx context.Context, sessionID string) (*model.QuestionResponse, error)
}

type questionAppImpl struct {
	config       *config.Config
	questionRepo questionrepo.QuestionRepository
	inflight     singleflight.Group
}

func NewQuestionApp(config *config.Config, questionRepo questionrepo.QuestionRepository) QuestionApp {
	return &questionAppImpl{config: config, questionRepo: questionRepo}
}

// Generate produces the full suggestion list for a session. Triggers that arrive
// while a round trip for the same session is pending join it instead of starting
// another one.
func (s *questionAppImpl) Generate(ctx context.Context, sessionID string) (*model.QuestionResponse, error) {
	for {
		ch := s.inflight.DoChan(sessionID, func() (interface{}, error) {
			return s.generate(ctx)
		})

		select {
		case <-ctx.Done():
			return nil, errors.SetCustomError(constant.ErrCanceled)
		case res := <-ch:
			if res.Shared {
				logger.Debug("[Generate] joined in-flight request", zap.String("session_id", sessionID))
			}
			// the round trip we joined belonged to a caller that went away
			if errors.Is(res.Err, constant.ErrCanceled) && ctx.Err() == nil {
				continue
			}
			if res.Err != nil {
				return nil, res.Err
			}
			shared := res.Val.(*model.QuestionResponse)
			out := *shared
			out.Questions = append([]string(nil), shared.Questions...)
			return &out, nil
		}
	}
}

func (s *questionAppImpl) generate(ctx context.Context) (*model.QuestionResponse, error) {
	if err := simulate.RoundTrip(ctx, s.config.Simulation.QuestionDelay); err != nil {
		logger.Debug("[Generate] round trip abandoned", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrCanceled)
	}

	questions, err := s.questionRepo.List(ctx)
	if err != nil {
		logger.Error("[Generate] err questionRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrGenerationFailed)
	}

	return &model.QuestionResponse{
		Questions: questions,
		Notification: model.Notification{
			Title:       "Questions Generated!",
			Description: "Your profile questions are ready to help you find the perfect roommate.",
			Variant:     constant.VariantDefault,
		},
	}, nil
}
