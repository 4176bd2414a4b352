package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	cartv1 "github.com/dwikikusuma/storefront-cart/api/cart/v1"
)

const maxBodyBytes = 1 << 20

type cartHandler struct {
	client  cartv1.CartServiceClient
	timeout time.Duration
	log     *slog.Logger
}

func newRouter(h *cartHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/carts", func(r chi.Router) {
		r.Post("/", h.createCart)
		r.Route("/{cartID}", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Post("/get-or-create", h.getOrCreateCart)
			r.Post("/lines", h.addLines)
			r.Patch("/lines", h.updateLines)
			r.Delete("/lines", h.removeLines)
			r.Put("/attributes", h.updateAttributes)
			r.Put("/buyer-identity", h.updateBuyerIdentity)
			r.Put("/discount-codes", h.updateDiscountCodes)
			r.Put("/note", h.updateNote)
		})
	})
	return r
}

func (h *cartHandler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (h *cartHandler) callCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

// cartIDParam returns the unescaped cart id. Storefront ids are gid:// URIs,
// so clients send them percent-encoded.
func cartIDParam(r *http.Request) string {
	raw := chi.URLParam(r, "cartID")
	if id, err := url.PathUnescape(raw); err == nil {
		return id
	}
	return raw
}

// decode reads a JSON body into v and writes a 400 when it cannot.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	return decodeBody(w, r, v, false)
}

// decodeOptional is decode for endpoints where an empty body, chunked or
// not, means a zero request.
func decodeOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	return decodeBody(w, r, v, true)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	if allowEmpty && (r.Body == nil || r.Body == http.NoBody) {
		return true
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func (h *cartHandler) reply(w http.ResponseWriter, cart *cartv1.Cart, err error, okStatus int) {
	if err != nil {
		writeGRPCError(w, err)
		return
	}
	writeJSON(w, okStatus, cart)
}

func (h *cartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.callCtx(r)
	defer cancel()

	cart, err := h.client.GetCart(ctx, &cartv1.GetCartRequest{CartId: cartIDParam(r)})
	h.reply(w, cart, err, http.StatusOK)
}

func (h *cartHandler) createCart(w http.ResponseWriter, r *http.Request) {
	var req cartv1.CreateCartRequest
	if !decodeOptional(w, r, &req) {
		return
	}

	ctx, cancel := h.callCtx(r)
	defer cancel()

	cart, err := h.client.CreateCart(ctx, &req)
	h.reply(w, cart, err, http.StatusCreated)
}

// getOrCreateCart answers with the cart in the path, or with a new cart built
// from the optional body when that one has expired.
func (h *cartHandler) getOrCreateCart(w http.ResponseWriter, r *http.Request) {
	var create cartv1.CreateCartRequest
	if !decodeOptional(w, r, &create) {
		return
	}

	ctx, cancel := h.callCtx(r)
	defer cancel()

	cart, err := h.client.GetOrCreateCart(ctx, &cartv1.GetOrCreateCartRequest{
		CartId: cartIDParam(r),
		Create: &create,
	})
	h.reply(w, cart, err, http.StatusOK)
}

func (h *cartHandler) addLines(w http.ResponseWriter, r *http.Request) {
	var req cartv1.AddLinesRequest
	if !decode(w, r, &req) {
		return
	}
	req.CartId = cartIDParam(r)

	ctx, cancel := h.callCtx(r)
	defer cancel()

	cart, err := h.client.AddLines(ctx, &req)
	h.reply(w, cart, err, http.StatusOK)
}

func (h *cartHandler) updateLines(w http.ResponseWriter, r *http.Request) {
	var req cartv1.UpdateLinesRequest
	if !decode(w, r, &req) {
		return
	}
	req.CartId = cartIDParam(r)

	ctx, cancel := h.callCtx(r)
	defer cancel()

	cart, err := h.client.UpdateLines(ctx, &req)
	h.reply(w, cart, err, http.StatusOK)
}

func (h *cartHandler) removeLines(w http.ResponseWriter, r *http.Request) {
	var req cartv1.RemoveLinesRequest
	if !decode(w, r, &req) {
		return
	}
	req.CartId = cartIDParam(r)

	ctx, cancel := h.callCtx(r)
	defer cancel()

	cart, err := h.client.RemoveLines(ctx, &req)
	h.reply(w, cart, err, http.StatusOK)
}

func (h *cartHandler) updateAttributes(w http.ResponseWriter, r *http.Request) {
	var req cartv1.UpdateAttributesRequest
	if !decode(w, r, &req) {
		return
	}
	req.CartId = cartIDParam(r)

	ctx, cancel := h.callCtx(r)
	defer cancel()

	cart, err := h.client.UpdateAttributes(ctx, &req)
	h.reply(w, cart, err, http.StatusOK)
}

func (h *cartHandler) updateBuyerIdentity(w http.ResponseWriter, r *http.Request) {
	var req cartv1.UpdateBuyerIdentityRequest
	if !decode(w, r, &req) {
		return
	}
	req.CartId = cartIDParam(r)

	ctx, cancel := h.callCtx(r)
	defer cancel()

	cart, err := h.client.UpdateBuyerIdentity(ctx, &req)
	h.reply(w, cart, err, http.StatusOK)
}

func (h *cartHandler) updateDiscountCodes(w http.ResponseWriter, r *http.Request) {
	var req cartv1.UpdateDiscountCodesRequest
	if !decode(w, r, &req) {
		return
	}
	req.CartId = cartIDParam(r)

	ctx, cancel := h.callCtx(r)
	defer cancel()

	cart, err := h.client.UpdateDiscountCodes(ctx, &req)
	h.reply(w, cart, err, http.StatusOK)
}

func (h *cartHandler) updateNote(w http.ResponseWriter, r *http.Request) {
	var req cartv1.UpdateNoteRequest
	if !decode(w, r, &req) {
		return
	}
	req.CartId = cartIDParam(r)

	ctx, cancel := h.callCtx(r)
	defer cancel()

	cart, err := h.client.UpdateNote(ctx, &req)
	h.reply(w, cart, err, http.StatusOK)
}
