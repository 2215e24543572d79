package fakeapi

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-block-calendar/models"
)

const maxLabelLength = 120

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

type blockStore struct {
	mu     sync.Mutex
	blocks map[string][]models.TimeBlock // partition key -> blocks
	now    func() time.Time
}

func newBlockStore(now func() time.Time) *blockStore {
	return &blockStore{blocks: make(map[string][]models.TimeBlock), now: now}
}

func partitionKey(userID, date string) string {
	return "USER#" + userID + "#DATE#" + date
}

func (s *blockStore) list(userID, date string) []models.TimeBlock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(userID, date)
}

func (s *blockStore) listLocked(userID, date string) []models.TimeBlock {
	out := append([]models.TimeBlock{}, s.blocks[partitionKey(userID, date)]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

func (s *blockStore) create(req models.CreateRequest) ([]models.TimeBlock, error) {
	startMin, endMin := toMinutes(req.Start), toMinutes(req.End)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.listLocked(req.UserID, req.Date) {
		if endMin > toMinutes(b.Start) && startMin < toMinutes(b.End) {
			return nil, fmt.Errorf("%w '%s' (%s-%s)", errOverlap, b.Label, b.Start, b.End)
		}
	}

	key := partitionKey(req.UserID, req.Date)
	s.blocks[key] = append(s.blocks[key], models.TimeBlock{
		BlockID:   uuid.NewString(),
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
		Label:     req.Label,
		CreatedAt: s.now().UTC().Format("2006-01-02T15:04:05") + "Z",
	})

	return s.listLocked(req.UserID, req.Date), nil
}

func (s *blockStore) delete(req models.DeleteRequest) ([]models.TimeBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := partitionKey(req.UserID, req.Date)
	blocks := s.blocks[key]
	for i, b := range blocks {
		if b.BlockID == req.BlockID {
			s.blocks[key] = append(blocks[:i:i], blocks[i+1:]...)
			return s.listLocked(req.UserID, req.Date), nil
		}
	}
	return nil, errBlockNotFound
}

func validateUserAndDate(userID, date string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", errUserIDRequired
	}
	if !dateRe.MatchString(date) {
		return "", errInvalidDate
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", errInvalidDate
	}
	return userID, nil
}

func validClock(v string) bool {
	if !timeRe.MatchString(v) {
		return false
	}
	h, _ := strconv.Atoi(v[:2])
	m, _ := strconv.Atoi(v[3:])
	return h <= 23 && m <= 59
}

func validateCreate(req *models.CreateRequest) error {
	userID, err := validateUserAndDate(req.UserID, req.Date)
	if err != nil {
		return err
	}
	req.UserID = userID

	if !validClock(req.Start) {
		return errInvalidStart
	}
	if !validClock(req.End) {
		return errInvalidEnd
	}
	if toMinutes(req.End) <= toMinutes(req.Start) {
		return errEndBeforeStart
	}

	req.Label = strings.TrimSpace(req.Label)
	if req.Label == "" {
		return errLabelRequired
	}
	if len([]rune(req.Label)) > maxLabelLength {
		return errLabelTooLong
	}
	return nil
}

func toMinutes(hhmm string) int {
	h, _ := strconv.Atoi(hhmm[:2])
	m, _ := strconv.Atoi(hhmm[3:])
	return h*60 + m
}
