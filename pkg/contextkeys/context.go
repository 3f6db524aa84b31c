package contextkeys

// Custom key type avoids collisions with other context users.
type contextKey string

// DBContextKey stores the *gorm.DB handle (pool or transaction) in context.
const DBContextKey = contextKey("db")
