package recall

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Wal33D/nhtsa-recall-lookup/pkg/cache"
	"github.com/Wal33D/nhtsa-recall-lookup/pkg/errors"
)

const (
	// defaultBaseURL is the NHTSA recall API root.
	defaultBaseURL = "https://api.nhtsa.gov/recalls"

	// defaultTimeout bounds each registry request.
	defaultTimeout = 10 * time.Second

	// defaultMemoSize is the per-lookup memoization capacity.
	defaultMemoSize = 128
)

// Options configures a Client. The zero value is valid and selects the
// public NHTSA API with default timeout, no response cache, and a
// 128-entry memo per lookup type.
type Options struct {
	BaseURL    string        // API root (default: the public NHTSA endpoint)
	HTTPClient *http.Client  // Transport override, mainly for tests
	Logger     *log.Logger   // Destination for fail-soft failure reports
	Cache      cache.Cache   // Optional cross-process response cache
	CacheTTL   time.Duration // TTL for response cache entries (0 = no expiry)
	MemoSize   int           // Per-lookup memo capacity (default 128)
}

// Client looks up recall campaigns from the NHTSA registry.
//
// Lookups are fail-soft: any transport or parse failure is logged and
// reported to the caller as an empty result (see the package documentation).
// Results are memoized per raw argument tuple in two independent bounded LRU
// caches, so repeated identical lookups issue no network calls. The memo key
// is the arguments exactly as supplied; two spellings that differ only in
// case or whitespace occupy separate entries and may fetch twice.
//
// A Client is safe for concurrent use. Concurrent first lookups for the same
// key may both hit the network; both results are correct and the later one
// wins the memo slot.
type Client struct {
	baseURL string
	http    *http.Client
	log     *log.Logger
	backend cache.Cache
	ttl     time.Duration

	mu        sync.Mutex
	vehicles  *cache.LRU[vehicleKey, []*Record]
	campaigns *cache.LRU[string, *Record]
}

// vehicleKey is the raw argument tuple of a vehicle lookup.
type vehicleKey struct {
	make, model, modelYear string
}

// New creates a Client for the public NHTSA API with default settings.
func New() *Client {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Client with explicit configuration.
// Zero-valued fields fall back to defaults.
func NewWithOptions(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	memoSize := opts.MemoSize
	if memoSize <= 0 {
		memoSize = defaultMemoSize
	}
	return &Client{
		baseURL:   baseURL,
		http:      httpClient,
		log:       logger,
		backend:   opts.Cache,
		ttl:       opts.CacheTTL,
		vehicles:  cache.NewLRU[vehicleKey, []*Record](memoSize),
		campaigns: cache.NewLRU[string, *Record](memoSize),
	}
}

// FetchVehicleRecalls fetches recall campaigns for a vehicle, in the order
// the registry returns them. Pass modelYear as "" to query all years; the
// year parameter is then omitted from the request entirely.
//
// When make or model normalizes to nothing, the lookup is rejected locally
// and returns an empty result without network I/O. Transport and parse
// failures are logged and also return an empty result.
func (c *Client) FetchVehicleRecalls(ctx context.Context, vehicleMake, vehicleModel, modelYear string) []*Record {
	if cleanValue(vehicleMake) == "" || cleanValue(vehicleModel) == "" {
		return nil
	}

	key := vehicleKey{make: vehicleMake, model: vehicleModel, modelYear: modelYear}
	c.mu.Lock()
	records, ok := c.vehicles.Get(key)
	c.mu.Unlock()
	if ok {
		return records
	}

	records, err := c.fetchVehicle(ctx, vehicleMake, vehicleModel, modelYear)
	if err != nil {
		c.log.Warn("vehicle recall lookup failed",
			"make", vehicleMake, "model", vehicleModel, "year", modelYear,
			"code", errors.GetCode(err), "err", err)
		return nil
	}

	c.mu.Lock()
	c.vehicles.Add(key, records)
	c.mu.Unlock()
	return records
}

// FetchCampaign fetches a single recall by its NHTSA campaign number.
// The number is sent exactly as supplied. Returns nil when the input is
// empty, when the registry knows no such campaign, or when the lookup fails;
// only the first result entry is considered if the registry returns several.
func (c *Client) FetchCampaign(ctx context.Context, campaignNumber string) *Record {
	if campaignNumber == "" {
		return nil
	}

	c.mu.Lock()
	record, ok := c.campaigns.Get(campaignNumber)
	c.mu.Unlock()
	if ok {
		return record
	}

	record, err := c.fetchCampaign(ctx, campaignNumber)
	if err != nil {
		c.log.Warn("campaign lookup failed",
			"campaign", campaignNumber,
			"code", errors.GetCode(err), "err", err)
		return nil
	}

	// A nil record is a definitive "not found" and is memoized like any
	// other answer.
	c.mu.Lock()
	c.campaigns.Add(campaignNumber, record)
	c.mu.Unlock()
	return record
}

// ClearCache drops both memoization caches. Subsequent lookups hit the
// network (or the response-cache backend) again. Safe to call at any time.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vehicles.Purge()
	c.campaigns.Purge()
}

func (c *Client) fetchVehicle(ctx context.Context, vehicleMake, vehicleModel, modelYear string) ([]*Record, error) {
	params := url.Values{}
	params.Set("make", cleanValue(vehicleMake))
	params.Set("model", cleanValue(vehicleModel))
	if modelYear != "" {
		params.Set("modelYear", modelYear)
	}
	requestURL := c.baseURL + "/recallsByVehicle?" + params.Encode()

	var records []*Record
	err := c.cached(ctx, "vehicle:"+params.Encode(), &records, func() error {
		entries, err := c.getResults(ctx, requestURL)
		if err != nil {
			return err
		}
		records = make([]*Record, 0, len(entries))
		for _, entry := range entries {
			records = append(records, recordFromEntry(entry))
		}
		return nil
	})
	return records, err
}

func (c *Client) fetchCampaign(ctx context.Context, campaignNumber string) (*Record, error) {
	params := url.Values{}
	params.Set("campaignNumber", campaignNumber)
	requestURL := c.baseURL + "/campaignNumber?" + params.Encode()

	var record *Record
	err := c.cached(ctx, "campaign:"+campaignNumber, &record, func() error {
		entries, err := c.getResults(ctx, requestURL)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		record = recordFromEntry(entries[0])
		return nil
	})
	return record, err
}

// cached consults the response-cache backend before invoking fetch and
// stores the fetched value afterwards. Backend failures are never fatal; a
// broken backend degrades to a plain fetch.
func (c *Client) cached(ctx context.Context, key string, v any, fetch func() error) error {
	if c.backend == nil {
		return fetch()
	}
	if data, hit, err := c.backend.Get(ctx, key); err == nil && hit {
		if err := json.Unmarshal(data, v); err == nil {
			return nil
		}
		_ = c.backend.Delete(ctx, key)
	}
	if err := fetch(); err != nil {
		return err
	}
	if data, err := json.Marshal(v); err == nil {
		_ = c.backend.Set(ctx, key, data, c.ttl)
	}
	return nil
}

// apiResponse is the registry's result envelope. The results key is spelled
// "results" or "Results" depending on the endpoint.
type apiResponse struct {
	Count   int
	Message string
	Results []map[string]any
}

// UnmarshalJSON probes the two result-key spellings explicitly; when a
// payload carries both, the lowercase "results" wins regardless of document
// order. A null results value counts as absent.
func (r *apiResponse) UnmarshalJSON(data []byte) error {
	var raw struct {
		Count   int             `json:"Count"`
		Message string          `json:"Message"`
		Lower   json.RawMessage `json:"results"`
		Upper   json.RawMessage `json:"Results"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Count = raw.Count
	r.Message = raw.Message

	list := raw.Lower
	if len(list) == 0 || string(list) == "null" {
		list = raw.Upper
	}
	if len(list) == 0 || string(list) == "null" {
		r.Results = nil
		return nil
	}
	return json.Unmarshal(list, &r.Results)
}

func (c *Client) getResults(ctx context.Context, requestURL string) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "building request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var data apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decoding registry response")
	}
	return data.Results, nil
}

func classifyTransportError(err error) error {
	var uerr *url.Error
	if stderrors.As(err, &uerr) && uerr.Timeout() {
		return errors.Wrap(errors.ErrCodeTimeout, err, "registry request timed out")
	}
	return errors.Wrap(errors.ErrCodeNetwork, err, "registry request failed")
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "registry endpoint not found")
	default:
		return errors.New(errors.ErrCodeNetwork, "registry returned status %d", code)
	}
}
