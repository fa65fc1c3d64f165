package constants

// Keys of values handed from validate middleware to handlers through c.Locals.
const (
	LOCALS_LIST_QUERY     = "listQuery"
	LOCALS_SEARCH_QUERY   = "searchQuery"
	LOCALS_DIRECTOR_ID    = "directorId"
	LOCALS_MOVIE_ID       = "movieId"
	LOCALS_DIRECTOR_INPUT = "directorInput"
	LOCALS_MOVIE_INPUT    = "movieInput"
	LOCALS_REQUEST_ID     = "requestid"
)

const (
	DATA_INPUT_IS_NOT_NUMBER   = "Path parameter must be an unsigned integer"
	ERROR_INPUT                = "Invalid query parameters"
	ERROR_BODY                 = "Request body is not valid JSON for this resource"
	ERROR_VALIDATION           = "Request body failed validation"
	ERROR_PARSE_DATA_TO_LOCALS = "Request was not validated before reaching the handler"
	ERROR_INTERNAL             = "The server could not complete the request"
)
