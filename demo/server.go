package demo

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/graph-guard/chmap"

	plog "github.com/phuslu/log"
	"github.com/tidwall/gjson"
	"github.com/valyala/fasthttp"
	"golang.org/x/exp/slices"
)

// Server exposes one map over HTTP for inspection and manipulation:
//
//	GET    /keys        all keys, sorted, as a JSON array
//	GET    /keys/<key>  the stored value, 404 when absent
//	PUT    /keys/<key>  stores {"value": "..."} from the JSON body
//	DELETE /keys/<key>  removes the key, returns the removed value
//	GET    /table       the slot layout as rendered by Fprint
//
// The map itself is not safe for concurrent use; the server provides
// the external synchronization with a single read-write lock.
type Server struct {
	Server *fasthttp.Server
	log    plog.Logger
	listen string

	lock sync.RWMutex
	m    *chmap.Map[string, string]
}

func NewServer(
	m *chmap.Map[string, string],
	name string,
	listenAddress string,
	readTimeout time.Duration,
	log plog.Logger,
) *Server {
	srv := &Server{
		Server: &fasthttp.Server{
			Name:        name,
			ReadTimeout: readTimeout,
		},
		log:    log,
		listen: listenAddress,
		m:      m,
	}
	srv.Server.Handler = srv.handle
	return srv
}

func (s *Server) handle(ctx *fasthttp.RequestCtx) {
	s.log.Debug().
		Bytes("method", ctx.Method()).
		Bytes("path", ctx.Path()).
		Msg("handling request")

	path := string(ctx.Path())
	switch {
	case path == "/keys":
		s.handleKeys(ctx)
	case strings.HasPrefix(path, "/keys/"):
		s.handleKey(ctx, strings.TrimPrefix(path, "/keys/"))
	case path == "/table":
		s.handleTable(ctx)
	default:
		s.log.Debug().Str("path", path).Msg("not existing endpoint")
		ctx.Error(fasthttp.StatusMessage(
			fasthttp.StatusNotFound,
		), fasthttp.StatusNotFound)
	}
}

func (s *Server) handleKeys(ctx *fasthttp.RequestCtx) {
	if string(ctx.Method()) != fasthttp.MethodGet {
		ctx.Error(fasthttp.StatusMessage(
			fasthttp.StatusMethodNotAllowed,
		), fasthttp.StatusMethodNotAllowed)
		return
	}

	s.lock.RLock()
	keys := s.m.Keys()
	s.lock.RUnlock()

	// Order across slots is undefined, sort for stable output
	slices.Sort(keys)
	if keys == nil {
		keys = []string{}
	}
	body, err := json.Marshal(keys)
	if err != nil {
		s.log.Error().Err(err).Msg("marshalling keys")
		ctx.Error(fasthttp.StatusMessage(
			fasthttp.StatusInternalServerError,
		), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func (s *Server) handleKey(ctx *fasthttp.RequestCtx, key string) {
	switch string(ctx.Method()) {
	case fasthttp.MethodGet:
		s.lock.RLock()
		v, ok := s.m.Get(key)
		s.lock.RUnlock()
		if !ok {
			ctx.Error(fasthttp.StatusMessage(
				fasthttp.StatusNotFound,
			), fasthttp.StatusNotFound)
			return
		}
		ctx.SetBodyString(v)

	case fasthttp.MethodPut, fasthttp.MethodPost:
		value := gjson.GetBytes(ctx.Request.Body(), "value")
		if !value.Exists() {
			s.log.Debug().Str("key", key).Msg("missing value field")
			ctx.Error(fasthttp.StatusMessage(
				fasthttp.StatusBadRequest,
			), fasthttp.StatusBadRequest)
			return
		}
		s.lock.Lock()
		prev, updated := s.m.Put(key, value.String())
		s.lock.Unlock()
		if updated {
			s.log.Info().Str("key", key).Str("previous", prev).Msg("updated")
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.SetBodyString(prev)
		} else {
			s.log.Info().Str("key", key).Msg("created")
			ctx.SetStatusCode(fasthttp.StatusCreated)
			ctx.SetBodyString(value.String())
		}

	case fasthttp.MethodDelete:
		s.lock.Lock()
		v, ok := s.m.Delete(key)
		s.lock.Unlock()
		if !ok {
			ctx.Error(fasthttp.StatusMessage(
				fasthttp.StatusNotFound,
			), fasthttp.StatusNotFound)
			return
		}
		s.log.Info().Str("key", key).Msg("deleted")
		ctx.SetBodyString(v)

	default:
		ctx.Error(fasthttp.StatusMessage(
			fasthttp.StatusMethodNotAllowed,
		), fasthttp.StatusMethodNotAllowed)
	}
}

func (s *Server) handleTable(ctx *fasthttp.RequestCtx) {
	if string(ctx.Method()) != fasthttp.MethodGet {
		ctx.Error(fasthttp.StatusMessage(
			fasthttp.StatusMethodNotAllowed,
		), fasthttp.StatusMethodNotAllowed)
		return
	}

	var b bytes.Buffer
	s.lock.RLock()
	err := Fprint(&b, s.m)
	s.lock.RUnlock()
	if err != nil {
		s.log.Error().Err(err).Msg("rendering table")
		ctx.Error(fasthttp.StatusMessage(
			fasthttp.StatusInternalServerError,
		), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetBody(b.Bytes())
}

// Serve starts listening. It blocks until the server stops.
func (s *Server) Serve() {
	s.log.Info().
		Str("name", s.Server.Name).
		Str("listenAddress", s.listen).
		Msg("starting")

	if err := s.Server.ListenAndServe(s.listen); err != nil {
		s.log.Fatal().Err(err).Msg("")
	}
}
