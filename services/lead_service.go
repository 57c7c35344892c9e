package services

import (
	"log"

	"github.com/AhmadTDiallo/PaycodeDRC-sub000/models"
	"github.com/AhmadTDiallo/PaycodeDRC-sub000/repositories"
)

// Notifier is the outbound side channel for new demo requests.
type Notifier interface {
	NotifyDemoRequest(req *models.DemoRequest) error
}

type LeadService interface {
	CreateDemoRequest(req models.DemoRequestRequest) (*models.DemoRequest, error)
	ListDemoRequests() ([]models.DemoRequest, error)
	Subscribe(req models.NewsletterRequest) (*models.NewsletterSubscription, error)
	ListSubscriptions() ([]models.NewsletterSubscription, error)
}

type leadService struct {
	leadRepo repositories.LeadRepository
	notifier Notifier
}

func NewLeadService(leadRepo repositories.LeadRepository, notifier Notifier) LeadService {
	return &leadService{
		leadRepo: leadRepo,
		notifier: notifier,
	}
}

// CreateDemoRequest persists the lead, then dispatches the notification
// off the request path. The lead write is the primary transaction; a
// failed email never rolls it back or fails the response.
func (s *leadService) CreateDemoRequest(req models.DemoRequestRequest) (*models.DemoRequest, error) {
	demoRequest := &models.DemoRequest{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
		Message: req.Message,
	}

	if err := s.leadRepo.CreateDemoRequest(demoRequest); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go func(dr models.DemoRequest) {
			if err := s.notifier.NotifyDemoRequest(&dr); err != nil {
				log.Printf("demo request notification failed: %v", err)
			}
		}(*demoRequest)
	}

	return demoRequest, nil
}

func (s *leadService) ListDemoRequests() ([]models.DemoRequest, error) {
	return s.leadRepo.ListDemoRequests()
}

func (s *leadService) Subscribe(req models.NewsletterRequest) (*models.NewsletterSubscription, error) {
	// Pre-check for a friendly fast path; the unique constraint at
	// insert time remains the authoritative duplicate signal.
	exists, err := s.leadRepo.SubscriptionExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrDuplicateEmail
	}

	sub := &models.NewsletterSubscription{Email: req.Email}
	if err := s.leadRepo.CreateSubscription(sub); err != nil {
		if isDuplicateKey(err) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, err
	}

	return sub, nil
}

func (s *leadService) ListSubscriptions() ([]models.NewsletterSubscription, error) {
	return s.leadRepo.ListSubscriptions()
}
