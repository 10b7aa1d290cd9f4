package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "gigmarket/api/v1/chat"
	"gigmarket/internal/chat/service"
	"gigmarket/internal/common"
)

// HTTPHandler serves the REST read surface. Every route except health sits
// behind the bearer-token middleware.
type HTTPHandler struct {
	chatService service.ChatService
	jwtManager  *common.JWTManager
}

func NewHTTPHandler(chatService service.ChatService, jwtManager *common.JWTManager) *HTTPHandler {
	return &HTTPHandler{
		chatService: chatService,
		jwtManager:  jwtManager,
	}
}

// Router configures HTTP routes
func (h *HTTPHandler) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(common.CORSMiddleware)
	router.Use(common.LoggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", h.health).Methods(http.MethodGet)

	conversations := api.PathPrefix("/conversations").Subrouter()
	conversations.Use(common.HTTPAuthMiddleware(h.jwtManager))
	conversations.HandleFunc("", h.listConversations).Methods(http.MethodGet)
	conversations.HandleFunc("/unread", h.unreadCount).Methods(http.MethodGet)
	conversations.HandleFunc("/{conversationID}", h.getConversation).Methods(http.MethodGet)
	conversations.HandleFunc("/{conversationID}/messages", h.listMessages).Methods(http.MethodGet)
	conversations.HandleFunc("/{conversationID}/read", h.markRead).Methods(http.MethodPost)

	return router
}

func (h *HTTPHandler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "gigmarket-chat"})
}

func (h *HTTPHandler) listConversations(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", 0)

	convs, total, err := h.chatService.ListConversations(r.Context(), userID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeProto(w, &pb.ListConversationsResponse{
		Conversations: toPBConversations(convs),
		TotalCount:    total,
	})
}

func (h *HTTPHandler) unreadCount(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	n, err := h.chatService.UnreadCount(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"unread": n})
}

func (h *HTTPHandler) getConversation(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	conv, err := h.chatService.GetConversation(r.Context(), userID, mux.Vars(r)["conversationID"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeProto(w, toPBConversation(conv))
}

func (h *HTTPHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	msgs, err := h.chatService.ListMessages(r.Context(), userID, mux.Vars(r)["conversationID"], limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeProto(w, &pb.ListMessagesResponse{Messages: toPBMessages(msgs)})
}

func (h *HTTPHandler) markRead(w http.ResponseWriter, r *http.Request) {
	userID, err := common.UserIDFromContext(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.chatService.MarkRead(r.Context(), userID, mux.Vars(r)["conversationID"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// Response bodies keep the proto field names, so they match the gRPC surface.
var protoJSON = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

func writeProto(w http.ResponseWriter, m proto.Message) {
	body, err := protoJSON.Marshal(m)
	if err != nil {
		log.Printf("Failed to encode response: %v", err)
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, common.HTTPStatus(err), map[string]string{"error": err.Error()})
}
