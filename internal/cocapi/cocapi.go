package cocapi

import (
	"clanbot/internal/common"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Public endpoint of the game API
const DefaultBaseURL = "https://api.clashofclans.com/v1"

// Routes inside the game API
const ROUTE_CLAN = "/clans/%s"
const ROUTE_CURRENT_WAR = "/clans/%s/currentwar"
const ROUTE_WAR_LOG = "/clans/%s/warlog"
const ROUTE_LEAGUE_GROUP = "/clans/%s/currentwar/leaguegroup"
const ROUTE_PLAYER = "/players/%s"

var (
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
)

type Client struct {
	baseURL string
	proxy   common.Proxy
}

func New(baseURL string, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		proxy: common.NewProxy(
			map[string]string{"Authorization": "Bearer " + apiKey},
			&http.Client{Timeout: 10 * time.Second},
		),
	}
}

func (client *Client) GetClan(ctx context.Context, tag string) (Clan, error) {

	data, err := client.request(ctx, ROUTE_CLAN, tag)
	if err != nil {
		return Clan{}, fmt.Errorf("could not get clan %s: %w", tag, err)
	}
	return UnmarshalClan(data)
}

// Returns nil when the clan is not in war or its war log is private
func (client *Client) GetCurrentWar(ctx context.Context, tag string) (*War, error) {

	data, err := client.request(ctx, ROUTE_CURRENT_WAR, tag)
	if errors.Is(err, ErrAccessDenied) {
		log.Warn().Err(err).Msgf("No access to the current war of clan %s, is the war log private?", tag)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get current war of clan %s: %w", tag, err)
	}

	war, err := UnmarshalWar(data)
	if err != nil {
		return nil, err
	}
	if war.State == WarStateNotInWar || war.State == "" {
		return nil, nil
	}
	return &war, nil
}

func (client *Client) GetWarLog(ctx context.Context, tag string) ([]WarLogEntry, error) {

	data, err := client.request(ctx, ROUTE_WAR_LOG, tag)
	if err != nil {
		return nil, fmt.Errorf("could not get war log of clan %s: %w", tag, err)
	}
	return UnmarshalWarLog(data)
}

// Returns nil when the clan is not taking part in a league
func (client *Client) GetLeagueGroup(ctx context.Context, tag string) (*LeagueGroup, error) {

	data, err := client.request(ctx, ROUTE_LEAGUE_GROUP, tag)
	if errors.Is(err, ErrNotFound) {
		log.Debug().Msgf("Clan %s is not in a league group", tag)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not get league group of clan %s: %w", tag, err)
	}

	group, err := UnmarshalLeagueGroup(data)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (client *Client) GetPlayer(ctx context.Context, tag string) (Player, error) {

	data, err := client.request(ctx, ROUTE_PLAYER, tag)
	if err != nil {
		return Player{}, fmt.Errorf("could not get player %s: %w", tag, err)
	}
	return UnmarshalPlayer(data)
}

func (client *Client) request(ctx context.Context, route string, tag string) ([]byte, error) {

	tag = NormalizeTag(tag)
	if tag == "" {
		return nil, fmt.Errorf("empty tag: %w", ErrNotFound)
	}
	endpoint := client.baseURL + fmt.Sprintf(route, url.PathEscape(tag))
	log.Debug().Msgf("Requesting to url %s", endpoint)

	data, err := client.proxy.Request(ctx, endpoint)
	var statusError *common.StatusError
	if errors.As(err, &statusError) {
		switch statusError.Code {
		case common.DATA_NOT_FOUND:
			return nil, fmt.Errorf("%w: %s", ErrNotFound, statusError)
		case common.FORBIDDEN:
			return nil, fmt.Errorf("%w: %s", ErrAccessDenied, statusError)
		}
	}
	return data, err
}
