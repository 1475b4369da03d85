package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/avendel/pokerledger/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	dbPath  string
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.dbPath = filepath.Join(s.T().TempDir(), "ledger.db")
	storage, err := New(s.dbPath)
	s.Require().NoError(err)
	s.storage = storage
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	s.Require().NoError(s.storage.Close())
}

func testSession() *model.Session {
	return &model.Session{
		Players: []model.Player{
			{ID: "p1", Name: "Alice", Chips: 500, TotalInvested: 500},
		},
		Transactions: []model.Transaction{
			{ID: "t1", PlayerID: "p1", PlayerName: "Alice", Type: model.TransactionBuyIn, Amount: 500, BalanceAfter: 500},
		},
		TotalPot: 500,
	}
}

func (s *StorageSuite) TestRoundTrip() {
	session := testSession()

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	loaded, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(session.Players, loaded.Players)
	s.Equal(session.TotalPot, loaded.TotalPot)
	s.Len(loaded.Transactions, 1)
	s.Equal(model.TransactionBuyIn, loaded.Transactions[0].Type)
}

func (s *StorageSuite) TestLoadEmptySlot() {
	_, err := s.storage.LoadSession(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSaveOverwritesSlot() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, testSession()))

	updated := testSession()
	updated.Players[0].Chips = 750
	updated.TotalPot = 750
	s.Require().NoError(s.storage.SaveSession(s.ctx, updated))

	loaded, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(750, loaded.Players[0].Chips)
	s.Equal(750, loaded.TotalPot)
}

func (s *StorageSuite) TestClearSession() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, testSession()))
	s.Require().NoError(s.storage.ClearSession(s.ctx))

	_, err := s.storage.LoadSession(s.ctx)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSurvivesReopen() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, testSession()))
	s.Require().NoError(s.storage.Close())

	reopened, err := New(s.dbPath)
	s.Require().NoError(err)
	s.storage = reopened

	loaded, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.Equal("Alice", loaded.Players[0].Name)
}

func (s *StorageSuite) TestNormalizesNilSlices() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.Session{}))

	loaded, err := s.storage.LoadSession(s.ctx)
	s.Require().NoError(err)
	s.NotNil(loaded.Players)
	s.NotNil(loaded.Transactions)
}
