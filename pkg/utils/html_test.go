package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanHTMLText(t *testing.T) {
	body := `<html><head><style>p { color: red; }</style></head><body>
<p>Dear&nbsp;John Smith,</p>
<table><tr><td>Flight:</td><td>AA1234</td></tr>
<tr><td>From:</td><td>LAX&nbsp;(Los Angeles)</td></tr>
<tr><td>To:</td><td>JFK</td></tr></table>
<script>var x = "Flight: ZZ9";</script>
Seat &amp; gate<br/>Gate: A12
</body></html>`

	text := CleanHTMLText(body)

	assert.NotContains(t, text, "<")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "ZZ9")
	assert.Contains(t, text, "Dear John Smith,")
	assert.Contains(t, text, "Flight: AA1234")
	assert.Contains(t, text, "From: LAX (Los Angeles)")
	assert.Contains(t, text, "Seat & gate\nGate: A12")

	record, err := Extract(text)
	require.NoError(t, err)
	assert.Equal(t, "AA1234", record.FlightNumber)
	assert.Equal(t, "LAX", record.DepartureAirport)
	assert.Equal(t, "JFK", record.ArrivalAirport)
	assert.Equal(t, "A12", record.Gate)
}

func TestCleanHTMLText_PlainText(t *testing.T) {
	assert.Equal(t, "Fish & chips", CleanHTMLText("  Fish &amp; chips \n"))
	assert.Equal(t, "", CleanHTMLText(""))
}
