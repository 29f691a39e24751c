package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(e *echo.Echo, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSetAndCurrent(t *testing.T) {
	e := echo.New()
	m := NewManager("test-secret")

	c, rec := newContext(e, nil)
	_, ok := m.Current(c)
	assert.False(t, ok, "fresh request must be anonymous")

	require.NoError(t, m.Set(c, "alice"))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	c2, _ := newContext(e, cookies)
	username, ok := m.Current(c2)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)
}

func TestClear(t *testing.T) {
	e := echo.New()
	m := NewManager("test-secret")

	c, rec := newContext(e, nil)
	require.NoError(t, m.Set(c, "alice"))

	c2, rec2 := newContext(e, rec.Result().Cookies())
	require.NoError(t, m.Clear(c2))

	c3, _ := newContext(e, rec2.Result().Cookies())
	_, ok := m.Current(c3)
	assert.False(t, ok)
}

func TestTamperedCookieIsRejected(t *testing.T) {
	e := echo.New()
	m := NewManager("test-secret")

	c, rec := newContext(e, nil)
	require.NoError(t, m.Set(c, "alice"))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	tampered := *cookies[0]
	b := []byte(tampered.Value)
	b[len(b)/2] ^= 0x01
	tampered.Value = string(b)

	c2, _ := newContext(e, []*http.Cookie{&tampered})
	_, ok := m.Current(c2)
	assert.False(t, ok, "signature check must reject a modified cookie")
}

func TestWrongKeyIsRejected(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e, nil)
	require.NoError(t, NewManager("secret-a").Set(c, "alice"))

	c2, _ := newContext(e, rec.Result().Cookies())
	_, ok := NewManager("secret-b").Current(c2)
	assert.False(t, ok)
}

func TestFlashesAreOneShot(t *testing.T) {
	e := echo.New()
	m := NewManager("test-secret")

	c, rec := newContext(e, nil)
	require.NoError(t, m.Flash(c, "info", "Goodbye!"))

	c2, rec2 := newContext(e, rec.Result().Cookies())
	flashes := m.Flashes(c2)
	require.Len(t, flashes, 1)
	assert.Equal(t, Flash{Category: "info", Message: "Goodbye!"}, flashes[0])

	c3, _ := newContext(e, rec2.Result().Cookies())
	assert.Empty(t, m.Flashes(c3))
}
