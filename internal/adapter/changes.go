package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-policy-desk/models"
)

const changeBuffer = 16

// SubscribeChanges implements [ServerAdapter] by reading the Server-Sent
// Events stream of GET /api/changes. Comment lines are keep-alives and are
// skipped; a frame that can't be decoded is logged and dropped.
func (h *httpServerAdapter) SubscribeChanges(ctx context.Context, tables ...models.Table) (<-chan models.ChangeEvent, error) {
	req := h.withToken(h.stream.R().SetContext(ctx)).
		SetHeader("Accept", "text/event-stream").
		SetDoNotParseResponse(true)
	for _, t := range tables {
		req.QueryParam.Add("table", string(t))
	}

	resp, err := req.Get("/api/changes")
	if err != nil {
		return nil, fmt.Errorf("subscribe changes request: %w", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() != http.StatusOK {
		defer body.Close()
		msg, _ := io.ReadAll(io.LimitReader(body, 4096))
		return nil, statusError(resp.StatusCode(), string(msg))
	}

	out := make(chan models.ChangeEvent, changeBuffer)
	go h.readChanges(ctx, body, out)
	return out, nil
}

func (h *httpServerAdapter) readChanges(ctx context.Context, body io.ReadCloser, out chan<- models.ChangeEvent) {
	defer close(out)
	defer body.Close()

	log := h.logger.GetChildLogger()

	scanner := bufio.NewScanner(body)
	var data strings.Builder
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			if data.Len() == 0 {
				continue
			}
			var event models.ChangeEvent
			if err := json.Unmarshal([]byte(data.String()), &event); err != nil {
				log.Warn().Err(err).Str("func", "httpServerAdapter.readChanges").Msg("dropping malformed change frame")
				data.Reset()
				continue
			}
			data.Reset()

			select {
			case out <- event:
			case <-ctx.Done():
				return
			}
		case strings.HasPrefix(line, ":"):
			// keep-alive
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		log.Debug().Err(err).Msg("change stream ended")
	}
}

