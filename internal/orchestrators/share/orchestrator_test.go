package share_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/share"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/shortlink"
	shortlinkmock "github.com/KirkDiggler/deckbuilder-api/internal/repositories/shortlink/mock"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/resolution"
	resolutionmock "github.com/KirkDiggler/deckbuilder-api/internal/services/resolution/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockLinks    *shortlinkmock.MockRepository
	mockResolver *resolutionmock.MockService
	orchestrator share.Service
	ctx          context.Context
	deck         codec.StoredDeck
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLinks = shortlinkmock.NewMockRepository(s.ctrl)
	s.mockResolver = resolutionmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	orch, err := share.NewOrchestrator(&share.Config{
		Links:         s.mockLinks,
		Resolver:      s.mockResolver,
		PublicBaseURL: "https://decks.example.com/",
	})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.deck = codec.StoredDeck{
		SpellcasterID: "sc_1",
		SlotIDs:       [entities.SlotCount]string{"u_1", "u_2", "", "", "t_1"},
		Name:          "Tempo",
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) link(id, hash string, linkType shortlink.LinkType, path string) *shortlink.Link {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &shortlink.Link{ID: id, Hash: hash, Type: linkType, Path: path, CreatedAt: now, ExpiresAt: now.Add(shortlink.TTL)}
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := share.NewOrchestrator(&share.Config{PublicBaseURL: "not a url"})
	s.Require().Error(err)
	fields := errors.ValidationFields(err)
	s.Contains(fields, "Links")
	s.Contains(fields, "Resolver")
	s.Contains(fields, "PublicBaseURL")
}

func (s *OrchestratorTestSuite) TestShareDeck() {
	token, err := codec.EncodeDeck(s.deck)
	s.Require().NoError(err)

	s.mockLinks.EXPECT().
		Create(s.ctx, shortlink.CreateInput{Hash: token, Type: shortlink.LinkTypeDeck, Path: "/builder"}).
		Return(&shortlink.CreateOutput{Link: s.link("abc123", token, shortlink.LinkTypeDeck, "/builder")}, nil)

	out, err := s.orchestrator.ShareDeck(s.ctx, &share.ShareDeckInput{Deck: s.deck, Path: "/builder"})
	s.Require().NoError(err)
	s.Equal(token, out.Token)
	s.Equal("abc123", out.Link.ID)
	s.Equal("https://decks.example.com/s/abc123", out.URL)
}

func (s *OrchestratorTestSuite) TestShareEmptyDeck() {
	_, err := s.orchestrator.ShareDeck(s.ctx, &share.ShareDeckInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestShareTeam() {
	decks := [entities.TeamSize]codec.StoredDeck{s.deck, {}, s.deck}

	s.mockLinks.EXPECT().Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input shortlink.CreateInput) (*shortlink.CreateOutput, error) {
			s.Equal(shortlink.LinkTypeTeam, input.Type)
			s.True(codec.IsTeamV2(input.Hash))
			return &shortlink.CreateOutput{Link: s.link("team01", input.Hash, input.Type, "/")}, nil
		})

	out, err := s.orchestrator.ShareTeam(s.ctx, &share.ShareTeamInput{Name: "Trio", Decks: decks})
	s.Require().NoError(err)

	team, err := codec.DecodeTeam(out.Token)
	s.Require().NoError(err)
	s.Equal("Trio", team.Name)
	s.Equal("sc_1", team.Decks[2].SpellcasterID)

	_, err = s.orchestrator.ShareTeam(s.ctx, &share.ShareTeamInput{Name: "Empty"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateLinkRejectsBadTokens() {
	_, err := s.orchestrator.CreateLink(s.ctx, &share.CreateLinkInput{Hash: "garbage", Type: shortlink.LinkTypeDeck})
	s.Require().Error(err)
	s.True(errors.IsInvalidToken(err))

	_, err = s.orchestrator.CreateLink(s.ctx, &share.CreateLinkInput{Hash: "x", Type: "card"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateLinkRepositoryError() {
	token, err := codec.EncodeDeck(s.deck)
	s.Require().NoError(err)

	s.mockLinks.EXPECT().Create(s.ctx, gomock.Any()).Return(nil, errors.ResourceExhausted("full"))

	_, err = s.orchestrator.CreateLink(s.ctx, &share.CreateLinkInput{Hash: token, Type: shortlink.LinkTypeDeck})
	s.Equal(errors.CodeResourceExhausted, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestResolveLink() {
	s.mockLinks.EXPECT().Get(s.ctx, shortlink.GetInput{ID: "abc"}).
		Return(&shortlink.GetOutput{Link: s.link("abc", "N4+a$b", shortlink.LinkTypeDeck, "/builder?tab=units")}, nil)

	out, err := s.orchestrator.ResolveLink(s.ctx, &share.ResolveLinkInput{ID: "abc"})
	s.Require().NoError(err)

	u, err := url.Parse(out.RedirectURL)
	s.Require().NoError(err)
	s.Equal("/builder", u.Path)
	s.Equal("units", u.Query().Get("tab"))
	s.Equal("N4+a$b", u.Query().Get(share.QueryDeck))
}

func (s *OrchestratorTestSuite) TestResolveLinkMissing() {
	s.mockLinks.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.NotFound("link not found"))

	_, err := s.orchestrator.ResolveLink(s.ctx, &share.ResolveLinkInput{ID: "gone"})
	s.True(errors.IsNotFound(err))
	s.Equal("link expired or invalid", errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestRedirectURL() {
	testCases := []struct {
		name     string
		link     *shortlink.Link
		expected string
		wantErr  bool
	}{
		{
			name:     "deck at root",
			link:     &shortlink.Link{Hash: "abc", Type: shortlink.LinkTypeDeck},
			expected: "/?d=abc",
		},
		{
			name:     "team replaces stale team param",
			link:     &shortlink.Link{Hash: "v2~x", Type: shortlink.LinkTypeTeam, Path: "/teams?team=old"},
			expected: "/teams?team=v2~x",
		},
		{
			name:    "absolute url",
			link:    &shortlink.Link{Hash: "abc", Type: shortlink.LinkTypeDeck, Path: "https://evil.com/"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, err := share.RedirectURL(tc.link)
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.expected, got)
		})
	}
}

func (s *OrchestratorTestSuite) TestLoadSharedDeck() {
	token, err := codec.EncodeDeck(s.deck)
	s.Require().NoError(err)

	resolved := entities.NewDeck("deck_1", "Tempo")
	s.mockResolver.EXPECT().
		ResolveDeck(s.ctx, &resolution.ResolveDeckInput{Deck: s.deck}).
		Return(&resolution.ResolveDeckOutput{Deck: resolved, Warnings: map[string][]string{"spellcaster": {"is required"}}}, nil)

	out, err := s.orchestrator.LoadShared(s.ctx, &share.LoadSharedInput{Query: url.Values{"d": {token}}})
	s.Require().NoError(err)
	s.Equal(shortlink.LinkTypeDeck, out.Type)
	s.Require().NotNil(out.Deck)
	s.Equal("deck_1", out.Deck.ID)
	s.Nil(out.Team)
	s.Contains(out.Warnings, "spellcaster")
}

func (s *OrchestratorTestSuite) TestLoadSharedTeamWinsOverDeck() {
	teamToken, err := codec.EncodeTeam("Trio", [entities.TeamSize]codec.StoredDeck{s.deck, s.deck, s.deck})
	s.Require().NoError(err)

	team := entities.NewTeam("team_1", "Trio", [entities.TeamSize]string{"a", "b", "c"})
	s.mockResolver.EXPECT().ResolveTeam(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *resolution.ResolveTeamInput) (*resolution.ResolveTeamOutput, error) {
			s.Equal("Trio", input.Team.Name)
			return &resolution.ResolveTeamOutput{Team: team}, nil
		})

	out, err := s.orchestrator.LoadShared(s.ctx, &share.LoadSharedInput{Query: url.Values{
		"d":    {"ignored"},
		"team": {teamToken},
	}})
	s.Require().NoError(err)
	s.Equal(shortlink.LinkTypeTeam, out.Type)
	s.Require().NotNil(out.Team)
	s.Equal("team_1", out.Team.ID)
	s.Nil(out.Deck)
}

func (s *OrchestratorTestSuite) TestLoadSharedInvalid() {
	s.Run("bad deck token", func() {
		_, err := s.orchestrator.LoadShared(s.ctx, &share.LoadSharedInput{Query: url.Values{"d": {"!!!"}}})
		s.True(errors.IsInvalidToken(err))
		s.Equal("link expired or invalid", errors.GetMessage(err))
	})

	s.Run("bad team token", func() {
		_, err := s.orchestrator.LoadShared(s.ctx, &share.LoadSharedInput{Query: url.Values{"team": {"v2~!!!"}}})
		s.True(errors.IsInvalidToken(err))
	})

	s.Run("nothing to load", func() {
		_, err := s.orchestrator.LoadShared(s.ctx, &share.LoadSharedInput{Query: url.Values{}})
		s.True(errors.IsInvalidArgument(err))
	})
}
