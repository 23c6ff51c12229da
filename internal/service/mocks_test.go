package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"rokto.app/bloodlink/internal/model"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockUserRepo) FindRoleByName(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context, status string, offset, limit int) ([]model.User, int64, error) {
	args := m.Called(ctx, status, offset, limit)
	var users []model.User
	if args.Get(0) != nil {
		users = args.Get(0).([]model.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) SearchDonors(ctx context.Context, bloodGroup, district, upazila string) ([]model.User, error) {
	args := m.Called(ctx, bloodGroup, district, upazila)
	var users []model.User
	if args.Get(0) != nil {
		users = args.Get(0).([]model.User)
	}
	return users, args.Error(1)
}

type mockRequestRepo struct {
	mock.Mock
}

func (m *mockRequestRepo) Create(ctx context.Context, req *model.DonationRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DonationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DonationRequest), args.Error(1)
}

func (m *mockRequestRepo) FindAll(ctx context.Context, status model.RequestStatus, offset, limit int) ([]model.DonationRequest, int64, error) {
	args := m.Called(ctx, status, offset, limit)
	var requests []model.DonationRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]model.DonationRequest)
	}
	return requests, args.Get(1).(int64), args.Error(2)
}

func (m *mockRequestRepo) FindByRequester(ctx context.Context, requesterID uuid.UUID, offset, limit int) ([]model.DonationRequest, int64, error) {
	args := m.Called(ctx, requesterID, offset, limit)
	var requests []model.DonationRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]model.DonationRequest)
	}
	return requests, args.Get(1).(int64), args.Error(2)
}

func (m *mockRequestRepo) FindRecentByRequester(ctx context.Context, requesterID uuid.UUID, limit int) ([]model.DonationRequest, error) {
	args := m.Called(ctx, requesterID, limit)
	var requests []model.DonationRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]model.DonationRequest)
	}
	return requests, args.Error(1)
}

func (m *mockRequestRepo) Update(ctx context.Context, req *model.DonationRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockRequestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRequestRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRequestRepo) CountByRequester(ctx context.Context, requesterID uuid.UUID) (int64, error) {
	args := m.Called(ctx, requesterID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRequestRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	var counts map[string]int64
	if args.Get(0) != nil {
		counts = args.Get(0).(map[string]int64)
	}
	return counts, args.Error(1)
}

type mockBlogRepo struct {
	mock.Mock
}

func (m *mockBlogRepo) Create(ctx context.Context, blog *model.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *mockBlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Blog), args.Error(1)
}

func (m *mockBlogRepo) FindAll(ctx context.Context, status model.BlogStatus, offset, limit int) ([]model.Blog, int64, error) {
	args := m.Called(ctx, status, offset, limit)
	var blogs []model.Blog
	if args.Get(0) != nil {
		blogs = args.Get(0).([]model.Blog)
	}
	return blogs, args.Get(1).(int64), args.Error(2)
}

func (m *mockBlogRepo) Update(ctx context.Context, blog *model.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *mockBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBlogRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockFundingRepo struct {
	mock.Mock
}

func (m *mockFundingRepo) Create(ctx context.Context, funding *model.Funding) error {
	return m.Called(ctx, funding).Error(0)
}

func (m *mockFundingRepo) FindAll(ctx context.Context, offset, limit int) ([]model.Funding, int64, error) {
	args := m.Called(ctx, offset, limit)
	var fundings []model.Funding
	if args.Get(0) != nil {
		fundings = args.Get(0).([]model.Funding)
	}
	return fundings, args.Get(1).(int64), args.Error(2)
}

func (m *mockFundingRepo) FindByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]model.Funding, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	var fundings []model.Funding
	if args.Get(0) != nil {
		fundings = args.Get(0).([]model.Funding)
	}
	return fundings, args.Get(1).(int64), args.Error(2)
}

func (m *mockFundingRepo) TotalRaised(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, userID uuid.UUID, kind, message string, requestID *uuid.UUID) {
	m.Called(ctx, userID, kind, message, requestID)
}

func donorUser(id uuid.UUID) *model.User {
	return &model.User{
		ID:         id,
		Name:       "Rahim Uddin",
		Email:      "rahim@example.com",
		Role:       model.Role{Name: model.RoleDonor},
		BloodGroup: "O+",
		District:   "Dhaka",
		Upazila:    "Savar",
		Status:     model.UserStatusActive,
	}
}

func volunteerUser(id uuid.UUID) *model.User {
	u := donorUser(id)
	u.Name = "Karim Volunteer"
	u.Email = "karim@example.com"
	u.Role = model.Role{Name: model.RoleVolunteer}
	return u
}

func adminUser(id uuid.UUID) *model.User {
	u := donorUser(id)
	u.Name = "Admin"
	u.Email = "admin@example.com"
	u.Role = model.Role{Name: model.RoleAdmin}
	return u
}
