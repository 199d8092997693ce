package main

import (
	"log"
	"net/http"
	"time"

	"doga-platform/database"
	"doga-platform/handlers"
	"doga-platform/middleware"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/rs/cors"
)

var (
	store = sessions.NewCookieStore([]byte("super-secret-key"))
)

func main() {
	// Veritabanı bağlantısı
	db, err := database.Connect()
	if err != nil {
		log.Fatal("Veritabanı bağlantı hatası:", err)
	}
	defer db.Close()

	if err := database.InitDB(db); err != nil {
		log.Fatal("Tablo oluşturma hatası:", err)
	}

	// Router oluştur
	r := mux.NewRouter()
	r.Use(middleware.Logger)

	// Statik dosyalar
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("./static/"))))

	// API Router
	api := r.PathPrefix("/api").Subrouter()

	// Auth endpoint'lerinde hız sınırı (IP başına dakikada 10 istek)
	authLimiter := middleware.NewRateLimiter(10, 5)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(authLimiter.Middleware)

	auth.HandleFunc("/login", handlers.Login(db, store)).Methods("POST", "OPTIONS")
	auth.HandleFunc("/register", handlers.Register(db)).Methods("POST", "OPTIONS")
	auth.HandleFunc("/logout", handlers.Logout(store)).Methods("POST", "OPTIONS")
	auth.HandleFunc("/refresh", handlers.RefreshToken(db)).Methods("POST", "OPTIONS")

	// Public endpoints
	api.HandleFunc("/walks", handlers.GetWalks(db)).Methods("GET")
	api.HandleFunc("/walks/top", handlers.GetTopWalks(db)).Methods("GET")
	api.HandleFunc("/walks/{id}", handlers.GetWalkDetail(db)).Methods("GET")
	api.HandleFunc("/walks/{id}/map", handlers.GetWalkMapData(db)).Methods("GET")
	api.HandleFunc("/gardens", handlers.GetGardens(db)).Methods("GET")
	api.HandleFunc("/gardens/{id}", handlers.GetGardenDetail(db)).Methods("GET")
	api.HandleFunc("/events", handlers.GetEvents(db)).Methods("GET")
	api.HandleFunc("/events/{id}", handlers.GetEventDetail(db)).Methods("GET")
	api.HandleFunc("/associations", handlers.GetAssociations(db)).Methods("GET")
	api.HandleFunc("/associations/{id}", handlers.GetAssociationDetail(db)).Methods("GET")
	api.HandleFunc("/markets", handlers.GetMarkets(db)).Methods("GET")
	api.HandleFunc("/quiz/questions", handlers.GetQuizQuestions(db)).Methods("GET")
	api.HandleFunc("/comments/{kind}/{id}", handlers.GetComments(db)).Methods("GET")
	api.HandleFunc("/profile/{username}", handlers.GetPublicProfile(db)).Methods("GET")

	// İlerleme defteri: cihaza bağlıdır, giriş gerektirmez
	api.HandleFunc("/progress", handlers.GetProgress(store)).Methods("GET")
	api.HandleFunc("/progress/reset", handlers.ResetProgress(store)).Methods("POST")
	api.HandleFunc("/progress/badges", handlers.GetBadges(store)).Methods("GET")
	api.HandleFunc("/progress/favorites", handlers.GetFavorites(store)).Methods("GET")
	api.HandleFunc("/progress/favorites", handlers.AddFavorite(store)).Methods("POST")
	api.HandleFunc("/progress/favorites/{kind}/{id}", handlers.RemoveFavorite(store)).Methods("DELETE")
	api.HandleFunc("/progress/walks/{id}/complete", handlers.CompleteWalk(db, store)).Methods("POST")
	api.HandleFunc("/quiz/submit", handlers.SubmitQuiz(db, store)).Methods("POST")

	// Protected API endpoints
	protected := api.PathPrefix("/").Subrouter()
	protected.Use(middleware.Auth(store))

	protected.HandleFunc("/user/profile", handlers.GetMyProfile(db)).Methods("GET")
	protected.HandleFunc("/user/profile", handlers.UpdateProfile(db)).Methods("PUT")
	protected.HandleFunc("/user/settings", handlers.GetSettings(db)).Methods("GET")
	protected.HandleFunc("/user/settings", handlers.UpdateSettings(db)).Methods("PUT")
	protected.HandleFunc("/user/security", handlers.UpdateSecurity(db)).Methods("PUT")
	protected.HandleFunc("/user/avatar", handlers.UploadAvatar(db)).Methods("POST")

	protected.HandleFunc("/events/{id}/register", handlers.RegisterForEvent(db)).Methods("POST")
	protected.HandleFunc("/events/{id}/register", handlers.UnregisterFromEvent(db)).Methods("DELETE")

	protected.HandleFunc("/comments", handlers.AddComment(db)).Methods("POST")
	protected.HandleFunc("/comments/{id}", handlers.DeleteComment(db)).Methods("DELETE")
	protected.HandleFunc("/ratings", handlers.RateContent(db)).Methods("POST")

	protected.HandleFunc("/friends", handlers.GetFriends(db)).Methods("GET")
	protected.HandleFunc("/friends/request", handlers.SendFriendRequest(db)).Methods("POST")
	protected.HandleFunc("/friends/respond", handlers.RespondFriendRequest(db)).Methods("POST")
	protected.HandleFunc("/friends/{id}", handlers.RemoveFriend(db)).Methods("DELETE")

	protected.HandleFunc("/groups", handlers.GetGroups(db)).Methods("GET")
	protected.HandleFunc("/groups", handlers.CreateGroup(db)).Methods("POST")
	protected.HandleFunc("/groups/{id}/join", handlers.JoinGroup(db)).Methods("POST")
	protected.HandleFunc("/groups/{id}/leave", handlers.LeaveGroup(db)).Methods("POST")
	protected.HandleFunc("/groups/{id}/messages", handlers.GetGroupMessages(db)).Methods("GET")

	protected.HandleFunc("/sessions", handlers.GetUserSessions(db, store)).Methods("GET")
	protected.HandleFunc("/sessions/{id}", handlers.TerminateSession(db, store)).Methods("DELETE")

	// WebSocket: grup sohbeti
	r.HandleFunc("/ws/groups/{id}", handlers.GroupChatWebSocket(db, store))

	// Page routes (HTML templates)
	r.HandleFunc("/", handlers.HomePage(db, store)).Methods("GET")
	r.HandleFunc("/login", handlers.LoginPage(store)).Methods("GET")
	r.HandleFunc("/register", handlers.RegisterPage()).Methods("GET")
	r.HandleFunc("/rotalar", handlers.WalksPage(db, store)).Methods("GET")
	r.HandleFunc("/rotalar/en-sevilenler", handlers.TopWalksPage(db)).Methods("GET")
	r.HandleFunc("/rotalar/{id}", handlers.WalkDetailPage(db, store)).Methods("GET")
	r.HandleFunc("/bostanlar", handlers.GardensPage(db, store)).Methods("GET")
	r.HandleFunc("/etkinlikler", handlers.EventsPage(db, store)).Methods("GET")
	r.HandleFunc("/test", handlers.QuizPage(store)).Methods("GET")
	r.HandleFunc("/harita", handlers.MapPage(db, store)).Methods("GET")
	r.HandleFunc("/panel", handlers.PanelPage(db, store)).Methods("GET")

	// Admin paneli
	admin := r.PathPrefix("/admin").Subrouter()

	// Public admin routes
	admin.HandleFunc("/login", handlers.AdminLoginPage).Methods("GET")
	admin.HandleFunc("/login", handlers.AdminLogin(db, store)).Methods("POST")

	// Protected admin routes
	adminProtected := admin.PathPrefix("/").Subrouter()
	adminProtected.Use(middleware.AdminAuth(store))

	adminProtected.HandleFunc("/dashboard", handlers.AdminDashboard(db, store)).Methods("GET")

	// ============ ADMIN API ENDPOINT'LERİ (JSON) ============
	adminAPI := adminProtected.PathPrefix("/api").Subrouter()

	// User API
	adminAPI.HandleFunc("/users", handlers.AdminUsers(db)).Methods("GET")
	adminAPI.HandleFunc("/users/{id}", handlers.AdminUserDetail(db)).Methods("GET")
	adminAPI.HandleFunc("/users/{id}", handlers.AdminUpdateUser(db)).Methods("PUT")
	adminAPI.HandleFunc("/users/{id}/toggle-status", handlers.AdminToggleUserStatus(db)).Methods("POST")
	adminAPI.HandleFunc("/users/{id}/reset-password", handlers.AdminResetPassword(db)).Methods("POST")
	adminAPI.HandleFunc("/users/{id}", handlers.AdminDeleteUser(db)).Methods("DELETE")

	// Rota API
	adminAPI.HandleFunc("/walks", handlers.AdminWalks(db)).Methods("GET")
	adminAPI.HandleFunc("/walks", handlers.AdminCreateWalk(db)).Methods("POST")
	adminAPI.HandleFunc("/walks/{id}", handlers.AdminUpdateWalk(db)).Methods("PUT")
	adminAPI.HandleFunc("/walks/{id}/toggle", handlers.AdminToggleWalk(db)).Methods("POST")
	adminAPI.HandleFunc("/walks/{id}/points", handlers.AdminSetWalkPoints(db)).Methods("PUT")
	adminAPI.HandleFunc("/walks/{id}", handlers.AdminDeleteWalk(db)).Methods("DELETE")

	// Bostan API
	adminAPI.HandleFunc("/gardens", handlers.AdminCreateGarden(db)).Methods("POST")
	adminAPI.HandleFunc("/gardens/{id}", handlers.AdminUpdateGarden(db)).Methods("PUT")
	adminAPI.HandleFunc("/gardens/{id}", handlers.AdminDeleteGarden(db)).Methods("DELETE")

	// Etkinlik API
	adminAPI.HandleFunc("/events", handlers.AdminCreateEvent(db)).Methods("POST")
	adminAPI.HandleFunc("/events/{id}", handlers.AdminUpdateEvent(db)).Methods("PUT")
	adminAPI.HandleFunc("/events/{id}", handlers.AdminDeleteEvent(db)).Methods("DELETE")

	// Dernek API
	adminAPI.HandleFunc("/associations", handlers.AdminCreateAssociation(db)).Methods("POST")
	adminAPI.HandleFunc("/associations/{id}", handlers.AdminUpdateAssociation(db)).Methods("PUT")
	adminAPI.HandleFunc("/associations/{id}", handlers.AdminDeleteAssociation(db)).Methods("DELETE")

	// Pazar API
	adminAPI.HandleFunc("/markets", handlers.AdminCreateMarket(db)).Methods("POST")
	adminAPI.HandleFunc("/markets/{id}", handlers.AdminUpdateMarket(db)).Methods("PUT")
	adminAPI.HandleFunc("/markets/{id}", handlers.AdminDeleteMarket(db)).Methods("DELETE")

	// Soru API
	adminAPI.HandleFunc("/questions", handlers.AdminQuestions(db)).Methods("GET")
	adminAPI.HandleFunc("/questions", handlers.AdminCreateQuestion(db)).Methods("POST")
	adminAPI.HandleFunc("/questions/{id}", handlers.AdminUpdateQuestion(db)).Methods("PUT")
	adminAPI.HandleFunc("/questions/{id}/toggle", handlers.AdminToggleQuestion(db)).Methods("POST")
	adminAPI.HandleFunc("/questions/{id}", handlers.AdminDeleteQuestion(db)).Methods("DELETE")

	// Yorum moderasyonu
	adminAPI.HandleFunc("/comments", handlers.AdminComments(db)).Methods("GET")
	adminAPI.HandleFunc("/comments/{id}", handlers.AdminDeleteComment(db)).Methods("DELETE")

	// Loglar, ayarlar, grafikler
	adminAPI.HandleFunc("/logs", handlers.AdminLogs(db)).Methods("GET")
	adminAPI.HandleFunc("/settings", handlers.AdminSettings(db)).Methods("GET")
	adminAPI.HandleFunc("/settings", handlers.AdminUpdateSettings(db)).Methods("POST")
	adminAPI.HandleFunc("/stats/charts", handlers.AdminChartData(db)).Methods("GET")

	// Admin logout
	adminAPI.HandleFunc("/logout", handlers.AdminLogout(store)).Methods("POST")

	// CORS ayarları
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://localhost:8181"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
	})
	handler := c.Handler(r)

	// Sunucuyu başlat
	srv := &http.Server{
		Handler:      handler,
		Addr:         ":8181",
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Println("Sunucu başlatılıyor: http://localhost:8181")
	log.Println("Admin panel: http://localhost:8181/admin/login")
	log.Fatal(srv.ListenAndServe())
}
