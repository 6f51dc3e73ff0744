package contact

import (
	"context"
	"strings"

	"github.com/muhammadheryan/storefront/application/notification"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	customerrepo "github.com/muhammadheryan/storefront/repository/customer"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	"go.uber.org/zap"
)

type ContactApp interface {
	Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactResponse, error)
}

type contactAppImpl struct {
	config       *config.Config
	customerRepo customerrepo.CustomerRepository
	publisher    rabbitmq.NotificationPublisher
}

func NewContactApp(config *config.Config, customerRepo customerrepo.CustomerRepository, publisher rabbitmq.NotificationPublisher) ContactApp {
	return &contactAppImpl{config: config, customerRepo: customerRepo, publisher: publisher}
}

// Submit stores the message on the customer keyed by email and queues the acknowledgement.
func (s *contactAppImpl) Submit(ctx context.Context, req *model.ContactRequest) (*model.ContactResponse, error) {
	in := model.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}
	if err := validatorx.ValidateStruct(in); err != nil {
		if validatorx.Failed(err, "Email", "email") {
			return nil, errors.SetCustomError(constant.ErrInvalidEmail)
		}
		return nil, errors.SetCustomError(constant.ErrAllFieldsRequired)
	}

	if _, err := s.customerRepo.UpsertContact(ctx, &model.CustomerEntity{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}); err != nil {
		logger.Error("[Submit] error customerRepo.UpsertContact", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	message := "Contact form submitted successfully"
	if err := notification.Send(ctx, s.publisher, notification.ContactMessages(&in, s.config.Mail.OperatorAddress)); err != nil {
		logger.Error("[Submit] notify", zap.String("error", err.Error()))
		message += notification.EmailFailedSuffix
	}
	return &model.ContactResponse{Message: message}, nil
}
