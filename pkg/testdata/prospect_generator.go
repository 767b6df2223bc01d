package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jordanlanch/outreachhq/ent"
)

// ProspectGeneratorConfig configures prospect generation parameters
type ProspectGeneratorConfig struct {
	Industry    string
	Count       int
	EmailChance float64 // 0.0-1.0 (probability of having email)
	PhoneChance float64
}

// Industry-specific business name suffixes
var businessSuffixes = map[string][]string{
	"Technology":    {"Tech", "Systems", "Labs", "Software", "Digital", "Solutions"},
	"Finance":       {"Capital", "Financial", "Partners", "Holdings", "Advisors"},
	"Healthcare":    {"Health", "Medical Group", "Care", "Clinic", "Wellness"},
	"Retail":        {"Retail", "Stores", "Outfitters", "Market", "Goods"},
	"Manufacturing": {"Manufacturing", "Industries", "Works", "Fabrication"},
}

// Industries returns the industry labels the generator knows about.
func Industries() []string {
	return []string{"Technology", "Finance", "Healthcare", "Retail", "Manufacturing"}
}

// GenerateProspects builds fake prospect rows for seeding and load tests.
// Company names carry a numeric suffix so repeated runs stay unique.
func GenerateProspects(cfg ProspectGeneratorConfig) []*ent.Prospect {
	if cfg.EmailChance == 0 {
		cfg.EmailChance = 0.8
	}
	if cfg.PhoneChance == 0 {
		cfg.PhoneChance = 0.6
	}

	suffixes := businessSuffixes[cfg.Industry]
	if len(suffixes) == 0 {
		suffixes = []string{"Group", "Co", "Enterprises"}
	}

	prospects := make([]*ent.Prospect, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		base := gofakeit.Company()
		suffix := suffixes[rand.Intn(len(suffixes))]
		name := fmt.Sprintf("%s %s %04d", base, suffix, rand.Intn(10000))

		p := &ent.Prospect{
			CompanyName:   name,
			Industry:      cfg.Industry,
			ContactPerson: gofakeit.Name(),
			Website:       "https://" + strings.ToLower(strings.ReplaceAll(base, " ", "")) + ".example.com",
		}
		if rand.Float64() < cfg.EmailChance {
			p.Email = gofakeit.Email()
		}
		if rand.Float64() < cfg.PhoneChance {
			p.Phone = gofakeit.Phone()
		}

		prospects = append(prospects, p)
	}
	return prospects
}

// BulkInsertProspects writes generated prospects in batches.
func BulkInsertProspects(ctx context.Context, client *ent.Client, prospects []*ent.Prospect, batchSize int) error {
	if batchSize <= 0 {
		batchSize = 100
	}

	for start := 0; start < len(prospects); start += batchSize {
		end := start + batchSize
		if end > len(prospects) {
			end = len(prospects)
		}

		builders := make([]*ent.ProspectCreate, 0, end-start)
		for _, p := range prospects[start:end] {
			builder := client.Prospect.Create().
				SetCompanyName(p.CompanyName).
				SetIndustry(p.Industry).
				SetContactPerson(p.ContactPerson).
				SetWebsite(p.Website)
			if p.Email != "" {
				builder.SetEmail(p.Email)
			}
			if p.Phone != "" {
				builder.SetPhone(p.Phone)
			}
			builders = append(builders, builder)
		}

		if _, err := client.Prospect.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("bulk insert failed at batch %d: %w", start/batchSize, err)
		}
	}
	return nil
}
