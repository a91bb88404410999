package server

// Server groups the entity-specific HTTP servers. Only listings exist today.
type Server struct {
	ListingServer
}

func NewServer(
	listingServer ListingServer,
) Server {
	return Server{
		ListingServer: listingServer,
	}
}
