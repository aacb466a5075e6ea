package presenters

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/domain/toast"
)

func TestToastPresenter_ToStackView(t *testing.T) {
	presenter := NewToastPresenter()

	stack := presenter.ToStackView([]toast.Toast{
		{ID: 7, Kind: toast.KindError, Title: "Error", Description: "Something went wrong", Duration: 0},
		{ID: 3, Kind: toast.KindSuccess, Title: "Saved", Duration: 3 * time.Second},
	})

	require.Len(t, stack.Toasts, 2)
	assert.False(t, stack.Empty())

	first := stack.Toasts[0]
	assert.Equal(t, uint64(7), first.ID)
	assert.True(t, first.Persistent)
	assert.Equal(t, "/toasts/7/dismiss", first.DismissURL)
	assert.Equal(t, "✕", first.Icon)

	second := stack.Toasts[1]
	assert.False(t, second.Persistent)
	assert.Equal(t, int64(3000), second.DurationMs)
}

func TestToastPresenter_RenderStack(t *testing.T) {
	presenter := NewToastPresenter()

	html, err := presenter.RenderStack(context.Background(), []toast.Toast{
		{ID: 2, Kind: toast.KindInfo, Title: "<b>Heads up</b>", Duration: time.Second},
		{ID: 1, Kind: toast.KindSuccess, Title: "Saved", Duration: 0},
	})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	items := doc.Find("li.toast")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "toast-2", items.First().AttrOr("id", ""))
	assert.Equal(t, "<b>Heads up</b>", items.First().Find(".toast-title").Text(), "titles are escaped, not interpreted")
	assert.Equal(t, 1, items.First().Find(".toast-progress").Length())
	assert.Equal(t, 0, items.Last().Find(".toast-progress").Length(), "persistent toasts have no countdown")
	assert.Equal(t, "/toasts/1/dismiss", items.Last().Find("button.toast-dismiss").AttrOr("hx-post", ""))
}

func TestToastPresenter_EmptyStack(t *testing.T) {
	html, err := NewToastPresenter().RenderStack(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, `<ol class="toast-stack"></ol>`, html)
}
