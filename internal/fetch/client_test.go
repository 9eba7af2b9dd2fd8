package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docwolf/actionmap/internal/scrape"
)

const samplePage = `<html><body><div class="table-contents"><table>
<tr>
	<th>Actions</th><th>Description</th><th>Access Level</th>
	<th>Resource Types (*required)</th><th>Condition Keys</th><th>Dependent Actions</th>
</tr>
<tr><td>s3:GetObject</td><td>Grants read</td><td>Read</td><td>object*</td><td></td><td></td></tr>
</table></div></body></html>`

const sampleTOC = `{"contents":[{"contents":[{"contents":[
	{"href":"list_amazons3.html"},
	{"href":"list_amazonsqs.html"},
	{"href":""}
]}]}]}`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/list_amazons3.html", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(samplePage))
	})
	mux.HandleFunc("/toc-contents.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(sampleTOC))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testClient(server *httptest.Server) *Client {
	return New(Config{
		BaseURL:      server.URL,
		TOCURL:       server.URL + "/toc-contents.json",
		Timeout:      5 * time.Second,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: time.Millisecond,
	})
}

func TestPageURL(t *testing.T) {
	client := New(Config{BaseURL: "https://example.com/reference"})
	assert.Equal(t, "https://example.com/reference/list_amazons3.html", client.PageURL("amazons3"))
}

func TestDocument(t *testing.T) {
	client := testClient(testServer(t))

	doc, err := client.Document(context.Background(), "amazons3")
	require.NoError(t, err)

	table, ok := scrape.FindActionsTable(doc)
	require.True(t, ok)
	assert.Contains(t, table.Text(), "s3:GetObject")
}

func TestDocumentNotFound(t *testing.T) {
	client := testClient(testServer(t))

	_, err := client.Document(context.Background(), "nosuchpage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestPublishedIndex(t *testing.T) {
	client := testClient(testServer(t))

	pages, err := client.PublishedIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"amazons3", "amazonsqs"}, pages)
}

func TestPublishedIndexStructureChanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"contents":[]}`))
	}))
	defer server.Close()

	client := New(Config{TOCURL: server.URL, Timeout: 5 * time.Second})
	_, err := client.PublishedIndex(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "toc structure changed")
}
