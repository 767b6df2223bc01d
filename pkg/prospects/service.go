package prospects

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/jordanlanch/outreachhq/ent"
	"github.com/jordanlanch/outreachhq/ent/engagement"
	"github.com/jordanlanch/outreachhq/ent/prospect"
	"github.com/jordanlanch/outreachhq/pkg/domain"
)

// Service handles prospect CRUD and import operations.
type Service struct {
	client *ent.Client
	logger *log.Logger
}

// NewService creates a new prospect service.
func NewService(client *ent.Client, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{client: client, logger: logger}
}

// CreateProspectRequest represents a request to create a prospect.
type CreateProspectRequest struct {
	CompanyName   string `json:"company_name" validate:"required,min=1,max=255"`
	Industry      string `json:"industry" validate:"required,min=1,max=100"`
	Website       string `json:"website,omitempty" validate:"omitempty,url"`
	ContactPerson string `json:"contact_person,omitempty" validate:"omitempty,max=255"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// UpdateProspectRequest represents a partial update. Nil fields are untouched.
type UpdateProspectRequest struct {
	CompanyName   *string `json:"company_name,omitempty" validate:"omitempty,min=1,max=255"`
	Industry      *string `json:"industry,omitempty" validate:"omitempty,min=1,max=100"`
	Website       *string `json:"website,omitempty" validate:"omitempty,url"`
	ContactPerson *string `json:"contact_person,omitempty" validate:"omitempty,max=255"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// ListProspectsRequest carries list filters and pagination.
type ListProspectsRequest struct {
	Industry string `query:"industry"`
	Offset   int    `query:"offset" validate:"gte=0"`
	Limit    int    `query:"limit" validate:"gte=0,lte=500"`
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// Create inserts a new prospect. Company names are unique; creating a
// duplicate returns a DuplicateProspect error.
func (s *Service) Create(ctx context.Context, req CreateProspectRequest) (*ent.Prospect, error) {
	exists, err := s.client.Prospect.Query().
		Where(prospect.CompanyName(req.CompanyName)).
		Exist(ctx)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if exists {
		return nil, domain.NewDuplicateProspectError(req.CompanyName)
	}

	p, err := s.client.Prospect.Create().
		SetCompanyName(req.CompanyName).
		SetIndustry(req.Industry).
		SetWebsite(req.Website).
		SetContactPerson(req.ContactPerson).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, domain.NewDuplicateProspectError(req.CompanyName)
		}
		return nil, domain.NewInternalError(err)
	}

	s.logger.Printf("✅ Prospect created: %s (id=%d)", p.CompanyName, p.ID)
	return p, nil
}

// Get retrieves a prospect by ID.
func (s *Service) Get(ctx context.Context, id int) (*ent.Prospect, error) {
	p, err := s.client.Prospect.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("prospect")
		}
		return nil, domain.NewInternalError(err)
	}
	return p, nil
}

// List returns prospects ordered by creation time, optionally filtered by a
// case-insensitive industry substring.
func (s *Service) List(ctx context.Context, req ListProspectsRequest) ([]*ent.Prospect, int, error) {
	if req.Limit <= 0 {
		req.Limit = 100
	}

	q := s.client.Prospect.Query()
	if req.Industry != "" {
		q = q.Where(prospect.IndustryContainsFold(req.Industry))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, domain.NewInternalError(err)
	}

	items, err := q.
		Order(ent.Asc(prospect.FieldCreatedAt)).
		Offset(req.Offset).
		Limit(req.Limit).
		All(ctx)
	if err != nil {
		return nil, 0, domain.NewInternalError(err)
	}

	return items, total, nil
}

// Update applies a partial update to a prospect.
func (s *Service) Update(ctx context.Context, id int, req UpdateProspectRequest) (*ent.Prospect, error) {
	upd := s.client.Prospect.UpdateOneID(id).SetUpdatedAt(time.Now())

	if req.CompanyName != nil {
		upd.SetCompanyName(*req.CompanyName)
	}
	if req.Industry != nil {
		upd.SetIndustry(*req.Industry)
	}
	if req.Website != nil {
		upd.SetWebsite(*req.Website)
	}
	if req.ContactPerson != nil {
		upd.SetContactPerson(*req.ContactPerson)
	}
	if req.Email != nil {
		upd.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		upd.SetPhone(*req.Phone)
	}

	p, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("prospect")
		}
		if ent.IsConstraintError(err) && req.CompanyName != nil {
			return nil, domain.NewDuplicateProspectError(*req.CompanyName)
		}
		return nil, domain.NewInternalError(err)
	}
	return p, nil
}

// Delete removes a prospect and its engagement history.
func (s *Service) Delete(ctx context.Context, id int) error {
	exists, err := s.client.Prospect.Query().Where(prospect.ID(id)).Exist(ctx)
	if err != nil {
		return domain.NewInternalError(err)
	}
	if !exists {
		return domain.NewNotFoundError("prospect")
	}

	if _, err := s.client.Engagement.Delete().
		Where(engagement.ProspectID(id)).
		Exec(ctx); err != nil {
		return domain.NewInternalError(err)
	}

	if err := s.client.Prospect.DeleteOneID(id).Exec(ctx); err != nil {
		return domain.NewInternalError(err)
	}

	s.logger.Printf("🗑️ Prospect deleted: id=%d", id)
	return nil
}

// Import inserts a batch of prospects, skipping ones whose company name
// already exists. Row failures do not abort the batch.
func (s *Service) Import(ctx context.Context, reqs []CreateProspectRequest) (*ImportResult, error) {
	result := &ImportResult{}

	for _, req := range reqs {
		_, err := s.Create(ctx, req)
		switch {
		case err == nil:
			result.Imported++
		case domain.IsDuplicateProspect(err):
			result.Skipped++
		default:
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", req.CompanyName, err))
		}
	}

	s.logger.Printf("📥 Import finished: %d imported, %d skipped, %d errors",
		result.Imported, result.Skipped, len(result.Errors))
	return result, nil
}

// ImportCSV reads prospects from CSV. The first row must be a header with at
// least company_name and industry columns; column order is free.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.NewBadRequestError("invalid CSV: missing header row")
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["company_name"]; !ok {
		return nil, domain.NewBadRequestError("invalid CSV: missing company_name column")
	}
	if _, ok := cols["industry"]; !ok {
		return nil, domain.NewBadRequestError("invalid CSV: missing industry column")
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var reqs []CreateProspectRequest
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewBadRequestError(fmt.Sprintf("invalid CSV at line %d", line))
		}

		reqs = append(reqs, CreateProspectRequest{
			CompanyName:   field(record, "company_name"),
			Industry:      field(record, "industry"),
			Website:       field(record, "website"),
			ContactPerson: field(record, "contact_person"),
			Email:         field(record, "email"),
			Phone:         field(record, "phone"),
		})
	}

	return s.Import(ctx, reqs)
}
