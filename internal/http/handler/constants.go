package handler

const (
	jsonKeyOK    = "ok"
	jsonKeyError = "error"

	queryParamSearch = "query"
	paramID          = "id"
	paramEpisodeID   = "episode_id"
)

// Caller-visible contract strings. Login failures stay distinguishable here;
// authorization failures elsewhere collapse to the generic Forbidden.
const (
	msgEmailAlreadyExists = "Email already exists!"
	msgUserNotFound       = "User doesn't exist!"
	msgWrongPassword      = "Wrong password!"
	msgInternalError      = "Internal server error occurred."
	msgPodcastsNotFound   = "Podcasts not found"
	msgRatingOutOfBounds  = "Rating must be between 1 and 5."
	msgCannotReview       = "Couldn't review podcast"
	msgCannotSubscribe    = "Couldn't subscribe podcast"
	msgCannotGetSubs      = "Couldn't get subscriptions"

	fmtPodcastNotFound = "Podcast with id %d not found"
	fmtEpisodeNotFound = "Episode with id %d not found in podcast with id %d"
)

const (
	msgInvalidID               = "invalid id"
	msgInvalidRequestBody      = "invalid request body"
	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidRole             = "invalid role"
	msgTitleCategoryRequired   = "title and category are required"
	msgContentRequired         = "content is required"
	msgQueryRequired           = "query is required"
)
