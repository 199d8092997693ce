// handlers/chat.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"doga-platform/models"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Grup başına bağlı istemciler
var (
	chatMu      sync.Mutex
	chatClients = map[int]map[*websocket.Conn]bool{}
)

func addChatClient(groupID int, conn *websocket.Conn) {
	chatMu.Lock()
	defer chatMu.Unlock()
	if chatClients[groupID] == nil {
		chatClients[groupID] = map[*websocket.Conn]bool{}
	}
	chatClients[groupID][conn] = true
}

func removeChatClient(groupID int, conn *websocket.Conn) {
	chatMu.Lock()
	defer chatMu.Unlock()
	delete(chatClients[groupID], conn)
}

func broadcastToGroup(groupID int, msg models.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	chatMu.Lock()
	defer chatMu.Unlock()
	for conn := range chatClients[groupID] {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(chatClients[groupID], conn)
		}
	}
}

// GroupChatWebSocket grup sohbetini taşır: gelen her mesaj veritabanına
// yazılır ve gruptaki tüm bağlı istemcilere dağıtılır.
func GroupChatWebSocket(db *sql.DB, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		session, _ := store.Get(r, "session")
		auth, ok := session.Values["authenticated"].(bool)
		if !ok || !auth {
			http.Error(w, "Yetkisiz erişim", http.StatusUnauthorized)
			return
		}

		userID, _ := session.Values["user_id"].(int)
		username, _ := session.Values["username"].(string)

		var groupID int
		var isMember bool
		db.QueryRow(`
            SELECT g.id, EXISTS(SELECT 1 FROM group_members WHERE group_id = g.id AND user_id = $2)
            FROM groups g WHERE g.id = $1
        `, vars["id"], userID).Scan(&groupID, &isMember)

		if !isMember {
			http.Error(w, "Grup üyesi değilsiniz", http.StatusForbidden)
			return
		}

		// WebSocket bağlantısını yükselt
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer conn.Close()

		addChatClient(groupID, conn)
		defer removeChatClient(groupID, conn)

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				break
			}

			body := string(raw)
			if body == "" {
				continue
			}

			msg := models.Message{
				GroupID:   groupID,
				UserID:    userID,
				Username:  username,
				Body:      body,
				CreatedAt: time.Now(),
			}

			err = db.QueryRow(`
                INSERT INTO messages (group_id, user_id, body)
                VALUES ($1, $2, $3)
                RETURNING id, created_at
            `, groupID, userID, body).Scan(&msg.ID, &msg.CreatedAt)

			if err != nil {
				log.Printf("Mesaj kaydedilemedi: %v", err)
				continue
			}

			broadcastToGroup(groupID, msg)
		}
	}
}
