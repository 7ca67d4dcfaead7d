package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SchedulingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований и серий
type Service struct {
	bookingRepo BookingRepository
	loc         *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, loc *time.Location, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		loc:         loc,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Для сеанса серии дополнительно возвращает все сеансы этой серии.
func (s *Service) GetByID(ctx context.Context, id string) (*models.ConfirmationResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if id == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := &models.ConfirmationResponse{
		Booking: *models.FromDomainBooking(booking, s.loc),
	}

	if booking.SeriesID != nil {
		sessions, err := s.bookingRepo.ListBySeries(ctx, *booking.SeriesID)
		if err != nil {
			s.logger.Error("GetByID: failed to list series=%s: %v", *booking.SeriesID, err)
			return nil, fmt.Errorf("%w: GetByID - list series: %v", ErrInternal, err)
		}
		resp.Series = models.FromDomainBookingList(sessions, s.loc)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return resp, nil
}

// GetSeries возвращает все сеансы серии по порядку
func (s *Service) GetSeries(ctx context.Context, seriesID string) (*models.SeriesResponse, error) {
	s.logger.Info("GetSeries: fetching series=%s", seriesID)

	if seriesID == "" {
		return nil, fmt.Errorf("%w: series id is required", ErrInvalidInput)
	}

	sessions, err := s.bookingRepo.ListBySeries(ctx, seriesID)
	if err != nil {
		s.logger.Error("GetSeries: repository error for series=%s: %v", seriesID, err)
		return nil, fmt.Errorf("%w: GetSeries - repository error: %v", ErrInternal, err)
	}
	if len(sessions) == 0 {
		s.logger.Warn("GetSeries: series=%s not found", seriesID)
		return nil, ErrSeriesNotFound
	}

	total := 0
	if t := sessions[0].TotalSessions; t != nil {
		total = *t
	}

	return &models.SeriesResponse{
		SeriesID:      seriesID,
		TotalSessions: total,
		Complete:      len(sessions) == total,
		Sessions:      models.FromDomainBookingList(sessions, s.loc),
	}, nil
}
