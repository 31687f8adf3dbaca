package profile

import (
	"context"

	"github.com/muhammadheryan/femnest/cmd/config"
	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
	"github.com/muhammadheryan/femnest/utils/errors"
	"github.com/muhammadheryan/femnest/utils/logger"
	"github.com/muhammadheryan/femnest/utils/simulate"
	validatorx "github.com/muhammadheryan/femnest/utils/validator"
	"go.uber.org/zap"
)

type ProfileApp interface {
	Save(ctx context.Context, req *model.PersonalInfoRequest) (*model.PersonalInfoResponse, error)
}

type profileAppImpl struct {
	config *config.Config
}

func NewProfileApp(config *config.Config) ProfileApp {
	return &profileAppImpl{config: config}
}

// Save checks the name, then the contact number, stopping at the first failure.
// Every other field is expected to have passed control-level validation already.
// The record is dropped once the simulated save completes.
func (s *profileAppImpl) Save(ctx context.Context, req *model.PersonalInfoRequest) (*model.PersonalInfoResponse, error) {
	if err := validatorx.ValidateVar(req.FullName, "personname"); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidName)
	}

	if req.Contact != "" {
		if err := validatorx.ValidateVar(req.Contact, "contact"); err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidContact)
		}
	}

	if err := simulate.RoundTrip(ctx, s.config.Simulation.ProfileDelay); err != nil {
		logger.Debug("[Save] round trip abandoned", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrCanceled)
	}

	logger.Info("[Save] personal details accepted", zap.String("city", req.City), zap.String("occupation", req.Occupation))
	return &model.PersonalInfoResponse{
		Redirect: constant.LandingPath,
		Notification: model.Notification{
			Title:       "Success!",
			Description: "Personal details saved successfully!",
			Variant:     constant.VariantDefault,
		},
	}, nil
}
