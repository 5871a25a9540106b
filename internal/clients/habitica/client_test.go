package habitica_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/habitica-actions/internal/clients/habitica"
	"github.com/KirkDiggler/habitica-actions/internal/errors"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	header http.Header
}

type ClientTestSuite struct {
	suite.Suite

	server   *httptest.Server
	requests []recordedRequest
	status   int
	body     string
	client   habitica.Client
	ctx      context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.requests = nil
	s.status = http.StatusOK
	s.body = `{"success":true,"data":{}}`
	s.ctx = context.Background()

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		s.requests = append(s.requests, recordedRequest{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = io.WriteString(w, s.body)
	}))

	client, err := habitica.New(&habitica.Config{
		BaseURL:  s.server.URL + "/api/v3/",
		UserID:   "user-1",
		APIKey:   "secret",
		ClientID: "user-1-habitica-actions",
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) lastRequest() recordedRequest {
	s.Require().NotEmpty(s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *ClientTestSuite) TestNew_Validation() {
	_, err := habitica.New(nil)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = habitica.New(&habitica.Config{BaseURL: "http://localhost"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "UserID: is required")
	s.Assert().Contains(err.Error(), "APIKey: is required")
}

func (s *ClientTestSuite) TestConfig_DefaultTimeout() {
	cfg := &habitica.Config{BaseURL: "http://localhost", UserID: "u", APIKey: "k"}
	s.Require().NoError(cfg.Validate())
	s.Assert().Equal(30*time.Second, cfg.HTTPTimeout)
}

func (s *ClientTestSuite) TestGetUser() {
	s.body = `{"success":true,"data":{
		"stats":{"gp":501.25,"mp":151,"hp":20.5},
		"items":{
			"eggs":{"Wolf":1,"BearCub":0,"Dragon":2},
			"hatchingPotions":{"Red":1},
			"pets":{"Wolf-Base":5,"Fox-Red":-1},
			"food":{"Meat":3},
			"mounts":{"Fox-Red":true}
		}}}`

	user, err := s.client.GetUser(s.ctx)
	s.Require().NoError(err)

	req := s.lastRequest()
	s.Assert().Equal(http.MethodGet, req.method)
	s.Assert().Equal("/api/v3/user", req.path)
	s.Assert().Equal("userFields=stats%2Citems", req.query)
	s.Assert().Equal("user-1", req.header.Get(habitica.HeaderUser))
	s.Assert().Equal("secret", req.header.Get(habitica.HeaderKey))
	s.Assert().Equal("user-1-habitica-actions", req.header.Get(habitica.HeaderClient))

	s.Assert().Equal(501.25, user.Stats.GP)
	s.Assert().Equal(float64(151), user.Stats.MP)
	s.Assert().Equal(20.5, user.Stats.HP)
	s.Assert().Equal([]string{"Wolf", "Dragon"}, user.Items.Eggs.Available())
	s.Assert().Equal(habitica.Counts{{Name: "Wolf-Base", Value: 5}, {Name: "Fox-Red", Value: -1}}, user.Items.Pets)
	s.Assert().True(user.Items.Mounts["Fox-Red"])
}

func (s *ClientTestSuite) TestGetUser_MissingItems() {
	s.body = `{"success":true,"data":{"stats":{"gp":1}}}`

	_, err := s.client.GetUser(s.ctx)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
	s.Assert().Contains(err.Error(), "missing items")
}

func (s *ClientTestSuite) TestGetParty() {
	s.body = `{"success":true,"data":{"quest":{"key":"dilatory","active":false,"members":{"user-1":null,"user-2":true}}}}`

	party, err := s.client.GetParty(s.ctx)
	s.Require().NoError(err)

	s.Assert().Equal("/api/v3/groups/party", s.lastRequest().path)
	s.Assert().Equal("dilatory", party.Quest.Key)
	s.Assert().False(party.Quest.HasJoined("user-1"))
	s.Assert().True(party.Quest.HasJoined("user-2"))
}

func (s *ClientTestSuite) TestGetParty_MissingQuest() {
	s.body = `{"success":true,"data":{"name":"The Party"}}`

	_, err := s.client.GetParty(s.ctx)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "missing quest")
}

func (s *ClientTestSuite) TestBuyArmoire() {
	s.body = `{"success":true,"data":{"armoire":{"type":"experience","value":42}}}`

	result, err := s.client.BuyArmoire(s.ctx)
	s.Require().NoError(err)

	req := s.lastRequest()
	s.Assert().Equal(http.MethodPost, req.method)
	s.Assert().Equal("/api/v3/user/buy-armoire", req.path)
	s.Assert().Equal("experience", result.Armoire.Type)
	s.Assert().Equal(float64(42), result.Armoire.Value)
}

func (s *ClientTestSuite) TestBuyArmoire_MissingType() {
	s.body = `{"success":true,"data":{"armoire":{}}}`

	_, err := s.client.BuyArmoire(s.ctx)
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "missing armoire.type")
}

func (s *ClientTestSuite) TestCastSpell() {
	s.Require().NoError(s.client.CastSpell(s.ctx, "earth"))
	s.Assert().Equal("/api/v3/user/class/cast/earth", s.lastRequest().path)

	err := s.client.CastSpell(s.ctx, "")
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestHatch() {
	s.Require().NoError(s.client.Hatch(s.ctx, "PandaCub", "Red"))

	req := s.lastRequest()
	s.Assert().Equal(http.MethodPost, req.method)
	s.Assert().Equal("/api/v3/user/hatch/PandaCub/Red", req.path)
}

func (s *ClientTestSuite) TestFeed() {
	testCases := []struct {
		name   string
		amount int
		query  string
	}{
		{name: "single", amount: 1, query: ""},
		{name: "zero is not sent", amount: 0, query: ""},
		{name: "many", amount: 10, query: "amount=10"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Require().NoError(s.client.Feed(s.ctx, "PandaCub-Skeleton", "Fish", tc.amount))

			req := s.lastRequest()
			s.Assert().Equal("/api/v3/user/feed/PandaCub-Skeleton/Fish", req.path)
			s.Assert().Equal(tc.query, req.query)
		})
	}
}

func (s *ClientTestSuite) TestAcceptQuestAndHealthPotion() {
	s.Require().NoError(s.client.AcceptQuest(s.ctx))
	s.Assert().Equal("/api/v3/groups/party/quests/accept", s.lastRequest().path)

	s.Require().NoError(s.client.BuyHealthPotion(s.ctx))
	s.Assert().Equal("/api/v3/user/buy-health-potion", s.lastRequest().path)
}

func (s *ClientTestSuite) TestRemoteErrors() {
	testCases := []struct {
		name    string
		status  int
		body    string
		check   func(error) bool
		message string
	}{
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"success":false,"error":"NotAuthorized","message":"Missing authentication headers."}`,
			check:   errors.IsUnauthenticated,
			message: "NotAuthorized: Missing authentication headers.",
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"success":false,"error":"NotFound","message":"Group not found."}`,
			check:   errors.IsNotFound,
			message: "Group not found.",
		},
		{
			name:    "server error without json",
			status:  http.StatusBadGateway,
			body:    `<html>bad gateway</html>`,
			check:   errors.IsUnavailable,
			message: "Bad Gateway",
		},
		{
			name:   "success false under 200",
			status: http.StatusOK,
			body:   `{"success":false,"message":"Not enough gold."}`,
			check: func(err error) bool {
				return errors.GetCode(err) == errors.CodeFailedPrecondition
			},
			message: "Not enough gold.",
		},
		{
			name:    "non json success",
			status:  http.StatusOK,
			body:    `ok`,
			check:   errors.IsInternal,
			message: "body is not a JSON object",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.status = tc.status
			s.body = tc.body

			err := s.client.AcceptQuest(s.ctx)
			s.Require().Error(err)
			s.Assert().True(tc.check(err), "unexpected code %s", errors.GetCode(err))
			s.Assert().Contains(err.Error(), tc.message)
		})
	}
}

func (s *ClientTestSuite) TestRemoteErrorMeta() {
	s.status = http.StatusUnauthorized
	s.body = `{"success":false,"error":"NotAuthorized"}`

	_, err := s.client.GetUser(s.ctx)
	s.Require().Error(err)

	meta := errors.GetMeta(err)
	s.Assert().Equal(http.StatusUnauthorized, meta["http_status"])
	s.Assert().Equal("/user", meta["path"])
}

func (s *ClientTestSuite) TestTransportError() {
	s.server.Close()

	err := s.client.BuyHealthPotion(s.ctx)
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *ClientTestSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.client.BuyHealthPotion(ctx)
	s.Require().Error(err)
	s.Assert().Empty(s.requests)
}
