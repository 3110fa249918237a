package constants

// Redis key formats
const (
	KeyUnreadCount   = "notifications:unread:%s"     // Format: notifications:unread:{user_id}
	KeyUnreadGen     = "notifications:unread:%s:gen" // Format: notifications:unread:{user_id}:gen
	KeyRateLimit     = "rate:limit:%s:%s"            // Format: rate:limit:{resource}:{user_id|ip}
	KeyPasswordReset = "password:reset:%s"           // Format: password:reset:{sha256(token)}
)
