package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fflogs_events/config"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fightsFixture = `{
	"title": "Pandaemonium",
	"start": 1577969903454,
	"end": 1577971503454,
	"fights": [{"id": 4, "boss": 78, "name": "Hesperos", "kill": true, "start_time": 1000, "end_time": 61000}],
	"friendlies": [
		{"id": 2, "guid": 20, "name": "Caster", "type": "Summoner"},
		{"id": 1, "guid": 10, "name": "Tank", "type": "Warrior"}
	],
	"friendlyPets": [{"id": 9, "guid": 1008, "name": "Carbuncle", "petOwner": 2}]
}`

func testServer(t *testing.T) *httptest.Server {
	gin.SetMode(gin.TestMode)

	g := gin.New()
	g.GET("/v1/report/fights/:code", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(fightsFixture))
	})
	g.GET("/v1/report/events/:view/:code", func(c *gin.Context) {
		if c.Query("start") == "1000" {
			c.Data(http.StatusOK, "application/json", []byte(`{"events":[{"timestamp":1000,"type":"cast"},{"timestamp":2000,"type":"cast"}]}`))
			return
		}
		c.Data(http.StatusOK, "application/json", []byte(`{"events":[{"timestamp":3000,"type":"cast"}]}`))
	})

	s := httptest.NewServer(g)
	t.Cleanup(s.Close)
	return s
}

func testConfig(s *httptest.Server) config.Config {
	return config.Config{
		APIKey:     "key",
		BaseURL:    s.URL + "/v1/",
		TimeZone:   "Asia/Tokyo",
		OrphanPets: "fail",
	}
}

func TestRunSummary(t *testing.T) {
	s := testServer(t)

	var buf bytes.Buffer
	err := run(context.Background(), testConfig(s), "abc", 0, "", "", 0, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "abc Pandaemonium")
	assert.Contains(t, out, "started 2020-01-02 21:58:23 JST")
	assert.Contains(t, out, "#4 Hesperos (kill)")
	assert.Contains(t, out, "pets: 1008")

	// tanks are listed before casters
	assert.Less(t, strings.Index(out, "Tank\tWarrior\ttank"), strings.Index(out, "Caster\tSummoner\tcaster"))
}

func TestRunEvents(t *testing.T) {
	s := testServer(t)

	var buf bytes.Buffer
	err := run(context.Background(), testConfig(s), "abc", 4, "casts", "", 2, &buf)
	require.NoError(t, err)

	var events []map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &events))
	require.Len(t, events, 3)
	assert.Equal(t, float64(0), events[0]["timestamp"])
	assert.Equal(t, float64(2000), events[2]["timestamp"])
}

func TestRunUnknownFight(t *testing.T) {
	s := testServer(t)

	err := run(context.Background(), testConfig(s), "abc", 99, "casts", "", 0, new(bytes.Buffer))
	assert.Error(t, err)
}
