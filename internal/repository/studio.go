package repository

import (
	"context"
	"fmt"

	"github.com/dancefest/api/internal/domain"
	"github.com/dancefest/api/internal/repository/dao"
)

var (
	ErrStudioNotFound         = dao.ErrStudioNotFound
	ErrRegistrationNotFound   = dao.ErrRegistrationNotFound
	ErrRepresentativeNotFound = dao.ErrRepresentativeNotFound
)

type StudioDAO interface {
	InsertWithRegistration(ctx context.Context, studio dao.Studio, rep *dao.StudioRepresentative, status string) (dao.Studio, error)
	FindByID(ctx context.Context, id uint) (dao.Studio, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Studio, error)
	FindByEventIDForUser(ctx context.Context, eventID, userID uint) ([]dao.Studio, error)
	Update(ctx context.Context, id uint, update domain.StudioUpdate) (dao.Studio, error)
	SetLogoPath(ctx context.Context, id uint, path string) error
	SoftDelete(ctx context.Context, id uint) error
	SetRegistrationStatus(ctx context.Context, studioID, eventID uint, status string, canEditDuringReview *bool) (dao.StudioEventRegistration, error)
	FindRegistration(ctx context.Context, studioID, eventID uint) (dao.StudioEventRegistration, error)
	DeleteRegistration(ctx context.Context, studioID, eventID uint) error
	FindRepresentative(ctx context.Context, id uint) (dao.StudioRepresentative, error)
	UpdateRepresentative(ctx context.Context, id uint, name, email *string) (dao.StudioRepresentative, error)
}

type StudioRepository struct {
	dao StudioDAO
}

func NewStudioRepository(dao StudioDAO) *StudioRepository {
	return &StudioRepository{
		dao: dao,
	}
}

func (r *StudioRepository) Create(ctx context.Context, studio domain.Studio, rep *domain.StudioRepresentative, status domain.RegistrationStatus) (domain.Studio, error) {
	record := dao.Studio{
		EventID:        studio.EventID,
		Name:           studio.Name,
		Country:        studio.Country,
		City:           studio.City,
		DirectorName:   studio.DirectorName,
		DirectorPhone:  studio.DirectorPhone,
		InvoiceDetails: studio.InvoiceDetails,
	}

	var repRecord *dao.StudioRepresentative
	if rep != nil {
		repRecord = &dao.StudioRepresentative{
			UserID: rep.UserID,
			Name:   rep.Name,
			Email:  rep.Email,
		}
	}

	created, err := r.dao.InsertWithRegistration(ctx, record, repRecord, string(status))
	if err != nil {
		return domain.Studio{}, fmt.Errorf("r.dao.InsertWithRegistration -> %w", err)
	}

	return studioDAOToDomain(created), nil
}

func (r *StudioRepository) FindByID(ctx context.Context, id uint) (domain.Studio, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Studio{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return studioDAOToDomain(found), nil
}

func (r *StudioRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Studio, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	return studiosDAOToDomain(found), nil
}

func (r *StudioRepository) FindByEventIDForUser(ctx context.Context, eventID, userID uint) ([]domain.Studio, error) {
	found, err := r.dao.FindByEventIDForUser(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventIDForUser -> %w", err)
	}

	return studiosDAOToDomain(found), nil
}

func (r *StudioRepository) Update(ctx context.Context, id uint, update domain.StudioUpdate) (domain.Studio, error) {
	updated, err := r.dao.Update(ctx, id, update)
	if err != nil {
		return domain.Studio{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return studioDAOToDomain(updated), nil
}

func (r *StudioRepository) SetLogoPath(ctx context.Context, id uint, path string) error {
	if err := r.dao.SetLogoPath(ctx, id, path); err != nil {
		return fmt.Errorf("r.dao.SetLogoPath -> %w", err)
	}

	return nil
}

func (r *StudioRepository) SoftDelete(ctx context.Context, id uint) error {
	if err := r.dao.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.SoftDelete -> %w", err)
	}

	return nil
}

func (r *StudioRepository) SetRegistrationStatus(ctx context.Context, studioID, eventID uint, status domain.RegistrationStatus, canEditDuringReview *bool) (domain.StudioEventRegistration, error) {
	registration, err := r.dao.SetRegistrationStatus(ctx, studioID, eventID, string(status), canEditDuringReview)
	if err != nil {
		return domain.StudioEventRegistration{}, fmt.Errorf("r.dao.SetRegistrationStatus -> %w", err)
	}

	return registrationDAOToDomain(registration), nil
}

func (r *StudioRepository) FindRegistration(ctx context.Context, studioID, eventID uint) (domain.StudioEventRegistration, error) {
	registration, err := r.dao.FindRegistration(ctx, studioID, eventID)
	if err != nil {
		return domain.StudioEventRegistration{}, fmt.Errorf("r.dao.FindRegistration -> %w", err)
	}

	return registrationDAOToDomain(registration), nil
}

func (r *StudioRepository) DeleteRegistration(ctx context.Context, studioID, eventID uint) error {
	if err := r.dao.DeleteRegistration(ctx, studioID, eventID); err != nil {
		return fmt.Errorf("r.dao.DeleteRegistration -> %w", err)
	}

	return nil
}

func (r *StudioRepository) FindRepresentative(ctx context.Context, id uint) (domain.StudioRepresentative, error) {
	rep, err := r.dao.FindRepresentative(ctx, id)
	if err != nil {
		return domain.StudioRepresentative{}, fmt.Errorf("r.dao.FindRepresentative -> %w", err)
	}

	return representativeDAOToDomain(rep), nil
}

func (r *StudioRepository) UpdateRepresentative(ctx context.Context, id uint, name, email *string) (domain.StudioRepresentative, error) {
	rep, err := r.dao.UpdateRepresentative(ctx, id, name, email)
	if err != nil {
		return domain.StudioRepresentative{}, fmt.Errorf("r.dao.UpdateRepresentative -> %w", err)
	}

	return representativeDAOToDomain(rep), nil
}

func studioDAOToDomain(s dao.Studio) domain.Studio {
	studio := domain.Studio{
		ID:             s.ID,
		EventID:        s.EventID,
		Name:           s.Name,
		Country:        s.Country,
		City:           s.City,
		DirectorName:   s.DirectorName,
		DirectorPhone:  s.DirectorPhone,
		InvoiceDetails: s.InvoiceDetails,
		LogoPath:       s.LogoPath,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}

	for _, rep := range s.Representatives {
		studio.Representatives = append(studio.Representatives, representativeDAOToDomain(rep))
	}
	for _, reg := range s.Registrations {
		studio.Registrations = append(studio.Registrations, registrationDAOToDomain(reg))
	}

	return studio
}

func studiosDAOToDomain(records []dao.Studio) []domain.Studio {
	studios := make([]domain.Studio, 0, len(records))
	for _, s := range records {
		studios = append(studios, studioDAOToDomain(s))
	}

	return studios
}

func representativeDAOToDomain(rep dao.StudioRepresentative) domain.StudioRepresentative {
	return domain.StudioRepresentative{
		ID:       rep.ID,
		StudioID: rep.StudioID,
		UserID:   rep.UserID,
		Name:     rep.Name,
		Email:    rep.Email,
		Active:   rep.Active,
	}
}

func registrationDAOToDomain(reg dao.StudioEventRegistration) domain.StudioEventRegistration {
	return domain.StudioEventRegistration{
		ID:                  reg.ID,
		StudioID:            reg.StudioID,
		EventID:             reg.EventID,
		Status:              domain.RegistrationStatus(reg.Status),
		CanEditDuringReview: reg.CanEditDuringReview,
		CreatedAt:           reg.CreatedAt,
		UpdatedAt:           reg.UpdatedAt,
	}
}
