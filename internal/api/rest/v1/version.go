package v1

// BasePath is the versioned route prefix of the booking service API.
const BasePath = "/api/v1/bs"
