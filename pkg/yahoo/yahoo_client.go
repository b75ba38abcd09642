package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	DefaultBaseURL   = "https://query2.finance.yahoo.com"
	DefaultCookieURL = "https://finance.yahoo.com/"
	crumbPath        = "/v1/test/getcrumb"
	userAgent        = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// modules requested from quoteSummary for company info
var SummaryModules = []string{
	"price",
	"summaryDetail",
	"assetProfile",
	"defaultKeyStatistics",
	"financialData",
}

// Client talks to the unofficial Yahoo endpoints. Those reject requests
// without a session cookie and the crumb tied to it, so HttpClient must
// carry a cookie jar.
type Client struct {
	HttpClient *http.Client
	BaseURL    string
	CookieURL  string

	session *crumbSession
}

type crumbSession struct {
	mu    sync.Mutex
	crumb string
}

func NewClient() Client {
	jar, _ := cookiejar.New(nil)
	return Client{
		HttpClient: &http.Client{
			Jar:     jar,
			Timeout: 20 * time.Second,
		},
		BaseURL:   DefaultBaseURL,
		CookieURL: DefaultCookieURL,
		session:   &crumbSession{},
	}
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
}

// crumb returns the cached crumb, fetching a cookie and a fresh crumb the
// first time
func (c Client) crumb(ctx context.Context) (string, error) {
	if c.session == nil {
		return "", fmt.Errorf("yahoo client was not created with NewClient")
	}
	c.session.mu.Lock()
	defer c.session.mu.Unlock()
	if c.session.crumb != "" {
		return c.session.crumb, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.CookieURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create cookie request: %w", err)
	}
	setBrowserHeaders(req)
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get yahoo cookie: %w", err)
	}
	// the consent page may answer with a non-200 but still sets the cookie
	io.Copy(io.Discard, response.Body)
	response.Body.Close()

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(c.BaseURL, "/")+crumbPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create crumb request: %w", err)
	}
	setBrowserHeaders(req)
	response, err = c.HttpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get yahoo crumb: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read yahoo crumb: %w", err)
	}
	crumb := strings.TrimSpace(string(body))
	if response.StatusCode != http.StatusOK || crumb == "" || strings.Contains(crumb, "<") {
		return "", fmt.Errorf("invalid yahoo crumb received with status code %d", response.StatusCode)
	}

	c.session.crumb = crumb
	return crumb, nil
}

// forgetCrumb drops a crumb the server rejected so the next call fetches
// a new one
func (c Client) forgetCrumb(rejected string) {
	c.session.mu.Lock()
	defer c.session.mu.Unlock()
	if c.session.crumb == rejected {
		c.session.crumb = ""
	}
}

// RawValue is yahoo's {"raw": 1.2, "fmt": "1.20"} wrapper. Raw is nil
// when yahoo sent an empty object.
type RawValue struct {
	Raw *float64 `json:"raw"`
}

func (v *RawValue) Value() *float64 {
	if v == nil {
		return nil
	}
	return v.Raw
}

type QuoteSummaryResult struct {
	Price *struct {
		Symbol             string    `json:"symbol"`
		LongName           string    `json:"longName"`
		ShortName          string    `json:"shortName"`
		RegularMarketPrice *RawValue `json:"regularMarketPrice"`
		MarketCap          *RawValue `json:"marketCap"`
	} `json:"price"`
	SummaryDetail *struct {
		TrailingPE    *RawValue `json:"trailingPE"`
		DividendYield *RawValue `json:"dividendYield"`
		Beta          *RawValue `json:"beta"`
		MarketCap     *RawValue `json:"marketCap"`
		AverageVolume *RawValue `json:"averageVolume"`
	} `json:"summaryDetail"`
	AssetProfile *struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
	} `json:"assetProfile"`
	DefaultKeyStatistics *struct {
		Beta *RawValue `json:"beta"`
	} `json:"defaultKeyStatistics"`
	FinancialData *struct {
		CurrentPrice *RawValue `json:"currentPrice"`
	} `json:"financialData"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *apiError            `json:"error"`
	} `json:"quoteSummary"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type NewsArticle struct {
	UUID                string `json:"uuid"`
	Title               string `json:"title"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
	Summary             string `json:"summary"`
}

type searchResponse struct {
	News []NewsArticle `json:"news"`
}

func (c Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	crumb, err := c.crumb(ctx)
	if err != nil {
		return err
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("crumb", crumb)

	u := strings.TrimRight(c.BaseURL, "/") + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode == http.StatusUnauthorized {
		c.forgetCrumb(crumb)
		return fmt.Errorf("yahoo returned status code %d", response.StatusCode)
	}
	// quoteSummary reports unknown symbols as 404 with a json error body
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusNotFound {
		return fmt.Errorf("yahoo returned status code %d", response.StatusCode)
	}

	err = json.Unmarshal(responseBytes, out)
	if err != nil {
		return fmt.Errorf("failed to decode response with status code %d: %w", response.StatusCode, err)
	}
	return nil
}

func (c Client) GetQuoteSummary(ctx context.Context, symbol string) (*QuoteSummaryResult, error) {
	path := "/v10/finance/quoteSummary/" + url.PathEscape(symbol)
	query := url.Values{}
	query.Set("modules", strings.Join(SummaryModules, ","))

	response := quoteSummaryResponse{}
	err := c.get(ctx, path, query, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote summary for %s: %w", symbol, err)
	}
	if e := response.QuoteSummary.Error; e != nil {
		return nil, fmt.Errorf("failed to get quote summary for %s: %s: %s", symbol, e.Code, e.Description)
	}
	if len(response.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no quote summary found for %s", symbol)
	}

	return &response.QuoteSummary.Result[0], nil
}

func (c Client) GetNews(ctx context.Context, symbol string, limit int) ([]NewsArticle, error) {
	query := url.Values{}
	query.Set("q", symbol)
	query.Set("quotesCount", "0")
	query.Set("newsCount", strconv.Itoa(limit))

	response := searchResponse{}
	err := c.get(ctx, "/v1/finance/search", query, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to get news for %s: %w", symbol, err)
	}

	return response.News, nil
}
