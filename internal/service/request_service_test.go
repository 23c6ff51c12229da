package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/model"
	"rokto.app/bloodlink/pkg/apperror"
)

func validCreateInput() dto.CreateRequestInput {
	return dto.CreateRequestInput{
		RecipientName: "Fatema Begum",
		District:      "Dhaka",
		Upazila:       "Savar",
		Street:        "12 Hospital Road",
		Hospital:      "Enam Medical College",
		BloodGroup:    "B+",
		DonationDate:  "2026-09-15",
		DonationTime:  "10:30",
	}
}

func TestCreateRequestSetsPendingAndPlaceholder(t *testing.T) {
	requestRepo := new(mockRequestRepo)
	userRepo := new(mockUserRepo)
	svc := NewRequestService(requestRepo, userRepo, nil)

	userID := uuid.New()
	userRepo.On("FindByID", mock.Anything, userID.String()).Return(donorUser(userID), nil)
	requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.DonationRequest")).Return(nil)

	req, err := svc.Create(context.Background(), userID, validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, req.Status)
	assert.Equal(t, model.DonorPlaceholder, req.DonorName)
	assert.Equal(t, model.DonorPlaceholder, req.DonorEmail)
	assert.Equal(t, "Rahim Uddin", req.RequesterName)
	requestRepo.AssertExpectations(t)
}

func TestCreateRequestRejectsNonDonorRoles(t *testing.T) {
	requestRepo := new(mockRequestRepo)
	userRepo := new(mockUserRepo)
	svc := NewRequestService(requestRepo, userRepo, nil)

	userID := uuid.New()
	userRepo.On("FindByID", mock.Anything, userID.String()).Return(volunteerUser(userID), nil)

	_, err := svc.Create(context.Background(), userID, validCreateInput())

	assert.ErrorIs(t, err, apperror.ErrForbidden)
	requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRequestRejectsBlockedUser(t *testing.T) {
	requestRepo := new(mockRequestRepo)
	userRepo := new(mockUserRepo)
	svc := NewRequestService(requestRepo, userRepo, nil)

	userID := uuid.New()
	blocked := donorUser(userID)
	blocked.Status = model.UserStatusBlocked
	userRepo.On("FindByID", mock.Anything, userID.String()).Return(blocked, nil)

	_, err := svc.Create(context.Background(), userID, validCreateInput())

	assert.ErrorIs(t, err, apperror.ErrForbidden)
	requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRequestRejectsMismatchedLocation(t *testing.T) {
	requestRepo := new(mockRequestRepo)
	userRepo := new(mockUserRepo)
	svc := NewRequestService(requestRepo, userRepo, nil)

	userID := uuid.New()
	userRepo.On("FindByID", mock.Anything, userID.String()).Return(donorUser(userID), nil)

	input := validCreateInput()
	input.Upazila = "Sitakunda" // belongs to Chattogram

	_, err := svc.Create(context.Background(), userID, input)

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClaimRequest(t *testing.T) {
	requesterID := uuid.New()

	pendingRequest := func() *model.DonationRequest {
		return &model.DonationRequest{
			ID:            uuid.New(),
			RequesterID:   requesterID,
			RecipientName: "Fatema Begum",
			DonorName:     model.DonorPlaceholder,
			DonorEmail:    model.DonorPlaceholder,
			Status:        model.StatusPending,
		}
	}

	t.Run("claiming own request is forbidden", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		req := pendingRequest()
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)

		_, err := svc.Claim(context.Background(), requesterID, req.ID)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("claiming a non-pending request conflicts", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		req := pendingRequest()
		req.Status = model.StatusInProgress
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)

		_, err := svc.Claim(context.Background(), uuid.New(), req.ID)

		assert.ErrorIs(t, err, apperror.ErrConflict)
	})

	t.Run("claim moves request to in_progress and notifies requester", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		notifier := new(mockNotifier)
		svc := NewRequestService(requestRepo, userRepo, notifier)

		req := pendingRequest()
		donorID := uuid.New()
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)
		userRepo.On("FindByID", mock.Anything, donorID.String()).Return(donorUser(donorID), nil)
		requestRepo.On("Update", mock.Anything, req).Return(nil)
		notifier.On("Notify", mock.Anything, requesterID, model.NotificationRequestClaimed, mock.Anything, mock.Anything).Return()

		claimed, err := svc.Claim(context.Background(), donorID, req.ID)

		require.NoError(t, err)
		assert.Equal(t, model.StatusInProgress, claimed.Status)
		assert.Equal(t, "Rahim Uddin", claimed.DonorName)
		assert.Equal(t, "rahim@example.com", claimed.DonorEmail)
		notifier.AssertExpectations(t)
	})
}

func TestUpdateStatus(t *testing.T) {
	requesterID := uuid.New()

	inProgressRequest := func() *model.DonationRequest {
		return &model.DonationRequest{
			ID:            uuid.New(),
			RequesterID:   requesterID,
			RecipientName: "Fatema Begum",
			DonorName:     "Rahim Uddin",
			DonorEmail:    "rahim@example.com",
			Status:        model.StatusInProgress,
		}
	}

	t.Run("owner completes an in_progress request", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		req := inProgressRequest()
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)
		userRepo.On("FindByID", mock.Anything, requesterID.String()).Return(donorUser(requesterID), nil)
		requestRepo.On("Update", mock.Anything, req).Return(nil)

		updated, err := svc.UpdateStatus(context.Background(), requesterID, req.ID, model.StatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, updated.Status)
	})

	t.Run("volunteer cannot complete a request", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		req := inProgressRequest()
		volunteerID := uuid.New()
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)
		userRepo.On("FindByID", mock.Anything, volunteerID.String()).Return(volunteerUser(volunteerID), nil)

		_, err := svc.UpdateStatus(context.Background(), volunteerID, req.ID, model.StatusCompleted)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
		requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("volunteer can move in_progress back to pending", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		notifier := new(mockNotifier)
		svc := NewRequestService(requestRepo, userRepo, notifier)

		req := inProgressRequest()
		volunteerID := uuid.New()
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)
		userRepo.On("FindByID", mock.Anything, volunteerID.String()).Return(volunteerUser(volunteerID), nil)
		requestRepo.On("Update", mock.Anything, req).Return(nil)
		notifier.On("Notify", mock.Anything, requesterID, model.NotificationStatusChanged, mock.Anything, mock.Anything).Return()

		updated, err := svc.UpdateStatus(context.Background(), volunteerID, req.ID, model.StatusPending)

		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, updated.Status)
	})

	t.Run("reverting to pending releases the donor slot", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		req := inProgressRequest()
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)
		userRepo.On("FindByID", mock.Anything, requesterID.String()).Return(donorUser(requesterID), nil)
		requestRepo.On("Update", mock.Anything, req).Return(nil)

		updated, err := svc.UpdateStatus(context.Background(), requesterID, req.ID, model.StatusPending)

		require.NoError(t, err)
		assert.Equal(t, model.DonorPlaceholder, updated.DonorName)
		assert.Equal(t, model.DonorPlaceholder, updated.DonorEmail)
		assert.False(t, updated.Claimed())
	})

	t.Run("terminal requests are immutable", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		req := inProgressRequest()
		req.Status = model.StatusCompleted
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)
		userRepo.On("FindByID", mock.Anything, requesterID.String()).Return(donorUser(requesterID), nil)

		_, err := svc.UpdateStatus(context.Background(), requesterID, req.ID, model.StatusPending)

		assert.ErrorIs(t, err, apperror.ErrConflict)
		requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown status is rejected before any lookup", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		_, err := svc.UpdateStatus(context.Background(), requesterID, uuid.New(), model.RequestStatus("open"))

		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
		requestRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestUpdateRequest(t *testing.T) {
	requesterID := uuid.New()

	t.Run("district change without upazila is rejected", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		req := &model.DonationRequest{
			ID:          uuid.New(),
			RequesterID: requesterID,
			District:    "Dhaka",
			Upazila:     "Savar",
			Status:      model.StatusPending,
		}
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)
		userRepo.On("FindByID", mock.Anything, requesterID.String()).Return(donorUser(requesterID), nil)

		newDistrict := "Chattogram"
		_, err := svc.Update(context.Background(), requesterID, req.ID, dto.UpdateRequestInput{District: &newDistrict})

		assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("unrelated donor cannot edit", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		req := &model.DonationRequest{
			ID:          uuid.New(),
			RequesterID: requesterID,
			Status:      model.StatusPending,
		}
		strangerID := uuid.New()
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)
		userRepo.On("FindByID", mock.Anything, strangerID.String()).Return(donorUser(strangerID), nil)

		street := "New Street"
		_, err := svc.Update(context.Background(), strangerID, req.ID, dto.UpdateRequestInput{Street: &street})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestDeleteRequest(t *testing.T) {
	requesterID := uuid.New()

	req := &model.DonationRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Status:      model.StatusPending,
	}

	t.Run("volunteer cannot delete someone else's request", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		volunteerID := uuid.New()
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)
		userRepo.On("FindByID", mock.Anything, volunteerID.String()).Return(volunteerUser(volunteerID), nil)

		err := svc.Delete(context.Background(), volunteerID, req.ID)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
		requestRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("admin can delete any request", func(t *testing.T) {
		requestRepo := new(mockRequestRepo)
		userRepo := new(mockUserRepo)
		svc := NewRequestService(requestRepo, userRepo, nil)

		adminID := uuid.New()
		requestRepo.On("FindByID", mock.Anything, req.ID).Return(req, nil)
		userRepo.On("FindByID", mock.Anything, adminID.String()).Return(adminUser(adminID), nil)
		requestRepo.On("Delete", mock.Anything, req.ID).Return(nil)

		err := svc.Delete(context.Background(), adminID, req.ID)

		assert.NoError(t, err)
		requestRepo.AssertExpectations(t)
	})
}
