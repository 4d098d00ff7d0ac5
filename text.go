package main

const (
	msgInvalidCredentials = "Invalid credentials"
	msgStatsFailed        = "Failed to load statistics"
	msgVisitorsFailed     = "Failed to load visitors"
	msgCleanupFailed      = "Failed to clean up visitor data"
)

var (
	PrivacyNotice = `This site records page views to understand which sections people read.
	IP addresses are never stored: each one is salted and hashed before it reaches the database,
	and the salt changes every time the server restarts. Requests that send a Do Not Track header
	are not recorded at all.`

	PrivacyRetention = `Visit records older than twelve months are deleted automatically.
	No cookies are set for visitors; the only cookie this site uses belongs to the admin login.`
)
