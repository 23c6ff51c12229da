package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/internal/repository"
)

var errSearchUnavailable = errors.New("donor search index is not configured")

// DonorIndexer keeps the donor search index in sync with the user table.
type DonorIndexer interface {
	IndexDonor(user *model.User) error
	RemoveDonor(id string) error
}

type SearchService interface {
	DonorIndexer
	// SearchDonors finds active donors matching blood group and location.
	SearchDonors(ctx context.Context, bloodGroup, district, upazila string) ([]model.User, error)
	// GenerateSearchToken issues a tenant token so clients can query the
	// donor index directly, scoped to active donors only.
	GenerateSearchToken() (string, error)
}

type searchService struct {
	client        meilisearch.ServiceManager
	userRepo      repository.UserRepository
	signingKeyUID string
	signingKey    string
}

// NewSearchService builds the donor search service. client may be nil, in
// which case everything falls back to database queries.
func NewSearchService(client meilisearch.ServiceManager, userRepo repository.UserRepository) SearchService {
	s := &searchService{
		client:   client,
		userRepo: userRepo,
	}
	if client != nil {
		s.initIndex()
		s.initSigningKey()
	}
	return s
}

func (s *searchService) initIndex() {
	filterable := []string{"blood_group", "district", "upazila", "status"}
	filterableInterface := make([]any, len(filterable))
	for i, v := range filterable {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index("donors").UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update donors filterable attributes: %v", err)
	}

	sortable := []string{"created_at"}
	if _, err := s.client.Index("donors").UpdateSortableAttributes(&sortable); err != nil {
		log.Printf("Failed to update donors sortable attributes: %v", err)
	}
}

func (s *searchService) initSigningKey() {
	resp, err := s.client.GetKeys(&meilisearch.KeysQuery{Limit: 20})
	if err != nil {
		log.Printf("Failed to get meilisearch keys: %v", err)
		return
	}

	for _, key := range resp.Results {
		if key.Name == "DonorSearchSigner" {
			s.signingKeyUID = key.UID
			s.signingKey = key.Key
			return
		}
	}

	expiry := time.Now().AddDate(100, 0, 0)
	key, err := s.client.CreateKey(&meilisearch.Key{
		Description: "Key to sign donor search tenant tokens",
		Name:        "DonorSearchSigner",
		Actions:     []string{"search"},
		Indexes:     []string{"donors"},
		ExpiresAt:   expiry,
	})
	if err != nil {
		log.Printf("Failed to create signing key: %v", err)
		return
	}

	s.signingKeyUID = key.UID
	s.signingKey = key.Key
}

type meiliDonorDoc struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url"`
	BloodGroup string `json:"blood_group"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at"`
}

func (s *searchService) IndexDonor(user *model.User) error {
	if s.client == nil {
		return nil
	}

	avatar := ""
	if user.AvatarURL != nil {
		avatar = *user.AvatarURL
	}

	doc := meiliDonorDoc{
		ID:         user.ID.String(),
		Name:       user.Name,
		AvatarURL:  avatar,
		BloodGroup: user.BloodGroup,
		District:   user.District,
		Upazila:    user.Upazila,
		Status:     user.Status,
		CreatedAt:  user.CreatedAt.Unix(),
	}

	primaryKey := "id"
	_, err := s.client.Index("donors").AddDocuments([]meiliDonorDoc{doc}, &primaryKey)
	return err
}

func (s *searchService) RemoveDonor(id string) error {
	if s.client == nil {
		return nil
	}
	_, err := s.client.Index("donors").DeleteDocument(id)
	return err
}

func (s *searchService) SearchDonors(ctx context.Context, bloodGroup, district, upazila string) ([]model.User, error) {
	// The database is authoritative for server-side search; the Meilisearch
	// index exists for client-side search via tenant tokens.
	return s.userRepo.SearchDonors(ctx, bloodGroup, district, upazila)
}

func (s *searchService) GenerateSearchToken() (string, error) {
	if s.client == nil || s.signingKeyUID == "" || s.signingKey == "" {
		return "", errSearchUnavailable
	}

	searchRules := map[string]any{
		"donors": map[string]any{
			"filter": "status = active",
		},
	}

	return s.client.GenerateTenantToken(s.signingKeyUID, searchRules, &meilisearch.TenantTokenOptions{
		APIKey:    s.signingKey,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	})
}
