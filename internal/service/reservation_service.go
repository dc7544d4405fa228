package service

import (
	"context"
	"errors"
	"time"

	"github.com/seatwise/backend-events/internal/domain"
	"github.com/seatwise/backend-events/internal/dto"
	"github.com/seatwise/backend-events/internal/repository"
	"github.com/seatwise/backend-events/pkg/logger"
	"github.com/seatwise/backend-events/pkg/retry"
)

// reservationService implements ReservationService. Every mutation
// reloads the event document, revalidates and saves under the version
// check; a conflicting concurrent save triggers a bounded retry.
type reservationService struct {
	eventRepo repository.EventRepository
	retryCfg  *retry.Config
}

// NewReservationService creates a new ReservationService. attempts
// bounds the reload-and-retry loop on version conflicts.
func NewReservationService(eventRepo repository.EventRepository, attempts int) ReservationService {
	if attempts < 1 {
		attempts = 1
	}
	return &reservationService{
		eventRepo: eventRepo,
		retryCfg: &retry.Config{
			MaxRetries:      attempts - 1,
			InitialInterval: 20 * time.Millisecond,
			MaxInterval:     200 * time.Millisecond,
			Multiplier:      2.0,
			JitterFactor:    0.2,
		},
	}
}

// mutateEvent runs fn against a freshly loaded document and saves the
// result. Version conflicts reload and rerun fn; domain failures abort.
func (s *reservationService) mutateEvent(ctx context.Context, eventID string, fn func(*domain.Event) error) error {
	result := retry.Do(ctx, s.retryCfg, func(ctx context.Context) error {
		event, err := s.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			return retry.Permanent(err)
		}
		if event == nil {
			return retry.Permanent(domain.ErrEventNotFound)
		}

		if err := fn(event); err != nil {
			return retry.Permanent(err)
		}

		if err := s.eventRepo.Save(ctx, event); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				logger.Get().Debugw("event save conflicted, retrying", "event_id", eventID)
				return retry.Retryable(err)
			}
			return retry.Permanent(err)
		}
		return nil
	})

	if result.Err == nil {
		return nil
	}
	if errors.Is(result.Err, retry.ErrMaxRetriesExceeded) {
		return domain.ErrVersionConflict
	}
	return result.Err
}

// ReserveSeat reserves one labelled seat in a numbered sector
func (s *reservationService) ReserveSeat(ctx context.Context, eventID string, req *dto.ReserveSeatRequest) (*dto.ReservedSeatResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, validationError(msg)
	}

	var resp *dto.ReservedSeatResponse
	err := s.mutateEvent(ctx, eventID, func(event *domain.Event) error {
		seat, err := reserveNumberedSeat(event, req.DateID, req.SectorID, req.SeatLabel, req.Holder, time.Now())
		if err != nil {
			return err
		}
		resp = seatResponse(eventID, req.DateID, req.SectorID, seat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateAdhocSeat claims a place in an unnumbered sector by appending
// a generated seat to its bucket.
func (s *reservationService) CreateAdhocSeat(ctx context.Context, eventID string, req *dto.AdhocSeatRequest) (*dto.ReservedSeatResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, validationError(msg)
	}

	var resp *dto.ReservedSeatResponse
	err := s.mutateEvent(ctx, eventID, func(event *domain.Event) error {
		seat, err := reserveAdhocSeat(event, req.DateID, req.SectorID, req.Holder, time.Now())
		if err != nil {
			return err
		}
		resp = seatResponse(eventID, req.DateID, req.SectorID, seat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// BatchReserve processes every sector-request of the batch against one
// in-memory document and saves once. Any failure aborts the whole batch
// before the save, so the batch is all-or-nothing.
func (s *reservationService) BatchReserve(ctx context.Context, eventID string, req *dto.BatchReservationRequest) (*dto.BatchReservationResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, validationError(msg)
	}

	var resp *dto.BatchReservationResponse
	err := s.mutateEvent(ctx, eventID, func(event *domain.Event) error {
		now := time.Now()
		seats := make([]dto.ReservedSeatResponse, 0)

		for _, n := range req.Numbered {
			taken, err := reserveNumberedBlock(event, n.DateID, n.SectorID, n.SeatLabels, req.Holder, now)
			if err != nil {
				return err
			}
			for _, seat := range taken {
				seats = append(seats, *seatResponse(eventID, n.DateID, n.SectorID, seat))
			}
		}

		for _, u := range req.Unnumbered {
			for i := 0; i < u.Quantity; i++ {
				seat, err := reserveAdhocSeat(event, u.DateID, u.SectorID, req.Holder, now)
				if err != nil {
					return err
				}
				seats = append(seats, *seatResponse(eventID, u.DateID, u.SectorID, seat))
			}
		}

		resp = &dto.BatchReservationResponse{EventID: eventID, Seats: seats}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ReservationsByHolder walks every event document and collects the
// holder's seats. Numbered seats yield one record each; unnumbered
// places collapse into one record per sector with a quantity.
func (s *reservationService) ReservationsByHolder(ctx context.Context, holder string) (*dto.ReservationListResponse, error) {
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*dto.ReservationRecord, 0)
	for _, event := range events {
		for di := range event.Dates {
			date := &event.Dates[di]
			for si := range date.Sectors {
				sector := &date.Sectors[si]
				records = append(records, holderRecords(event, date, sector, holder)...)
			}
		}
	}

	return &dto.ReservationListResponse{
		Holder:       holder,
		Reservations: records,
		Total:        len(records),
	}, nil
}

// reserveNumberedSeat locates and reserves a single seat, keeping the
// sector counters in step with the seat state.
func reserveNumberedSeat(event *domain.Event, dateID, sectorID, seatLabel, holder string, now time.Time) (*domain.Seat, error) {
	sector, err := findSector(event, dateID, sectorID)
	if err != nil {
		return nil, err
	}
	// A labelled lookup against an unnumbered sector is treated the same
	// as the sector not existing.
	if !sector.Numbered {
		return nil, domain.ErrSectorNotFound
	}

	seat := sector.FindSeat(seatLabel)
	if seat == nil {
		return nil, domain.ErrSeatNotFound
	}
	if err := seat.ReserveFor(holder, event.Publicated, now); err != nil {
		return nil, err
	}

	sector.Available--
	sector.Ocuped++
	return seat, nil
}

// reserveNumberedBlock validates every label of the block before
// mutating any of them, then reserves them all.
func reserveNumberedBlock(event *domain.Event, dateID, sectorID string, labels []string, holder string, now time.Time) ([]*domain.Seat, error) {
	sector, err := findSector(event, dateID, sectorID)
	if err != nil {
		return nil, err
	}
	if !sector.Numbered {
		return nil, domain.ErrWrongSectorType
	}

	seats := make([]*domain.Seat, 0, len(labels))
	for _, label := range labels {
		seat := sector.FindSeat(label)
		if seat == nil {
			return nil, domain.ErrSeatNotFound
		}
		if _, err := seat.State.Reserve(event.Publicated); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	for _, seat := range seats {
		if err := seat.ReserveFor(holder, event.Publicated, now); err != nil {
			return nil, err
		}
		sector.Available--
		sector.Ocuped++
	}
	return seats, nil
}

func reserveAdhocSeat(event *domain.Event, dateID, sectorID, holder string, now time.Time) (*domain.Seat, error) {
	sector, err := findSector(event, dateID, sectorID)
	if err != nil {
		return nil, err
	}
	if sector.Numbered {
		return nil, domain.ErrWrongSectorType
	}
	if sector.Available <= 0 {
		return nil, domain.ErrInsufficientCapacity
	}

	seat := domain.NewAdhocSeat(now)
	if err := seat.ReserveFor(holder, event.Publicated, now); err != nil {
		return nil, err
	}

	if len(sector.Rows) == 0 {
		sector.Rows = make([][]domain.Seat, 1)
	}
	sector.Rows[0] = append(sector.Rows[0], seat)
	sector.Available--
	sector.Ocuped++
	return &sector.Rows[0][len(sector.Rows[0])-1], nil
}

func findSector(event *domain.Event, dateID, sectorID string) (*domain.Sector, error) {
	date := event.DateByID(dateID)
	if date == nil {
		return nil, domain.ErrDateNotFound
	}
	sector := date.SectorByID(sectorID)
	if sector == nil {
		return nil, domain.ErrSectorNotFound
	}
	return sector, nil
}

func seatResponse(eventID, dateID, sectorID string, seat *domain.Seat) *dto.ReservedSeatResponse {
	return &dto.ReservedSeatResponse{
		EventID:    eventID,
		DateID:     dateID,
		SectorID:   sectorID,
		SeatLabel:  seat.Label,
		TicketCode: seat.TicketCode,
		State:      string(seat.State),
	}
}

func holderRecords(event *domain.Event, date *domain.EventDate, sector *domain.Sector, holder string) []*dto.ReservationRecord {
	base := dto.ReservationRecord{
		EventID:    event.ID,
		EventName:  event.Name,
		DateID:     date.ID,
		DateTime:   date.DateTime.Format(time.RFC3339),
		SectorID:   sector.ID,
		SectorName: sector.Name,
	}

	if sector.Numbered {
		var records []*dto.ReservationRecord
		for i := range sector.Rows {
			for j := range sector.Rows[i] {
				seat := &sector.Rows[i][j]
				if seat.ReservedBy != holder || !seat.State.Reserved() {
					continue
				}
				rec := base
				rec.SeatLabel = seat.Label
				rec.TicketCode = seat.TicketCode
				rec.State = string(seat.State)
				rec.ReservedAt = seat.Timestamp.Format(time.RFC3339)
				records = append(records, &rec)
			}
		}
		return records
	}

	var quantity int
	var first *domain.Seat
	for i := range sector.Rows {
		for j := range sector.Rows[i] {
			seat := &sector.Rows[i][j]
			if seat.ReservedBy != holder || !seat.State.Reserved() {
				continue
			}
			if first == nil {
				first = seat
			}
			quantity++
		}
	}
	if quantity == 0 {
		return nil
	}
	rec := base
	rec.Quantity = quantity
	rec.TicketCode = first.TicketCode
	rec.State = string(first.State)
	rec.ReservedAt = first.Timestamp.Format(time.RFC3339)
	return []*dto.ReservationRecord{&rec}
}
