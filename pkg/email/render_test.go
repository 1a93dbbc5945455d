package email

import (
	"strings"
	"testing"
	"time"

	"go-agency-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	at := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func testRenderer() *Renderer {
	r := NewRenderer("hello@novaforge.studio")
	r.now = fixedClock()
	return r
}

func cleanSubmission() domain.CleanSubmission {
	return domain.CleanSubmission{
		Name:    "Jane Doe",
		Email:   "jane@co.com",
		Company: "Acme BV",
		Phone:   "+31 6 12345678",
		Service: "AI",
		Budget:  "$10K-$25K",
		Message: "We need a 20+ character project description here.",
	}
}

func TestRenderAdminEmailAddressing(t *testing.T) {
	sub := cleanSubmission()
	msg, err := testRenderer().RenderAdminEmail(&sub)
	require.NoError(t, err)

	assert.Equal(t, []string{"hello@novaforge.studio"}, msg.To)
	assert.Equal(t, "jane@co.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "Jane Doe")
	assert.Contains(t, msg.HTML, "jane@co.com")
	assert.Contains(t, msg.Text, "jane@co.com")
}

func TestRenderAckEmailAddressing(t *testing.T) {
	sub := cleanSubmission()
	msg, err := testRenderer().RenderAckEmail(&sub)
	require.NoError(t, err)

	assert.Equal(t, []string{"jane@co.com"}, msg.To)
	assert.Empty(t, msg.ReplyTo)
	assert.Contains(t, msg.HTML, "Jane Doe")
}

func TestRenderEscapesUserInput(t *testing.T) {
	sub := cleanSubmission()
	sub.Name = "<script>alert(1)</script>"
	sub.Message = "Hello <b>there</b>, we want a site & more, minimum twenty chars."

	admin, err := testRenderer().RenderAdminEmail(&sub)
	require.NoError(t, err)
	ack, err := testRenderer().RenderAckEmail(&sub)
	require.NoError(t, err)

	for _, html := range []string{admin.HTML, ack.HTML} {
		assert.Contains(t, html, "&lt;script&gt;")
		assert.NotContains(t, html, "<script>")
		assert.NotContains(t, html, "<b>there</b>")
	}

	// The plain-text part carries the input untouched.
	assert.Contains(t, admin.Text, "<script>alert(1)</script>")
}

func TestRenderConvertsNewlines(t *testing.T) {
	sub := cleanSubmission()
	sub.Message = "First line of the brief.\r\nSecond line of the brief."

	admin, err := testRenderer().RenderAdminEmail(&sub)
	require.NoError(t, err)

	assert.Contains(t, admin.HTML, "First line of the brief.<br>")
	assert.NotContains(t, admin.HTML, "\r\n<br>")
	assert.Contains(t, admin.Text, "First line of the brief.\r\nSecond line of the brief.")
}

func TestRenderOmitsAbsentOptionalFields(t *testing.T) {
	sub := cleanSubmission()
	sub.Phone = ""
	sub.Company = ""

	admin, err := testRenderer().RenderAdminEmail(&sub)
	require.NoError(t, err)

	// Absent fields produce no row at all, not an empty one.
	assert.NotContains(t, admin.HTML, "Phone")
	assert.NotContains(t, admin.HTML, "Company")
	assert.NotContains(t, admin.Text, "Phone:")
	assert.Contains(t, admin.HTML, "Service")
}

func TestRenderIsDeterministicUnderFixedClock(t *testing.T) {
	sub := cleanSubmission()
	r := testRenderer()

	first, err := r.RenderAdminEmail(&sub)
	require.NoError(t, err)
	second, err := r.RenderAdminEmail(&sub)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderIncludesReceivedAtTimestamp(t *testing.T) {
	sub := cleanSubmission()
	admin, err := testRenderer().RenderAdminEmail(&sub)
	require.NoError(t, err)

	assert.Contains(t, admin.HTML, "Mar 14, 2025 at 09:30 UTC")
	assert.True(t, strings.Contains(admin.Text, "Mar 14, 2025 at 09:30 UTC"))
}
