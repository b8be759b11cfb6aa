package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type ctxKey struct{}

// request 는 요청 하나의 id 와 outbound 호출(음악 API, 친구 피드) 순번이다.
type request struct {
	id    string
	spans atomic.Int64
}

func GenerateID() string {
	return uuid.NewString()
}

// ValidID 는 X-Request-Id 헤더 값을 그대로 로그에 남겨도 되는지 본다. UUID 만 허용.
func ValidID(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, &request{id: id})
}

func fromContext(ctx context.Context) *request {
	if ctx == nil {
		return nil
	}
	r, _ := ctx.Value(ctxKey{}).(*request)
	return r
}

func RequestIDFromContext(ctx context.Context) string {
	if r := fromContext(ctx); r != nil {
		return r.id
	}
	return ""
}

// CurrentSpanID 는 마지막으로 발급된 span 번호. 아직 없으면 "0".
func CurrentSpanID(ctx context.Context) string {
	r := fromContext(ctx)
	if r == nil {
		return "0"
	}
	return strconv.FormatInt(r.spans.Load(), 10)
}

// NextSpanID 는 다음 span 번호를 발급한다. 미들웨어 밖이면 새 request id 에 span 1.
func NextSpanID(ctx context.Context) (requestID, spanID string) {
	r := fromContext(ctx)
	if r == nil {
		return GenerateID(), "1"
	}
	return r.id, strconv.FormatInt(r.spans.Add(1), 10)
}
