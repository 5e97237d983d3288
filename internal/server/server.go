package server

// Server объединяет HTTP-серверы отдельных сущностей.
type Server struct {
	CycleServer
	ROIServer
}

func NewServer(
	cycleServer CycleServer,
	roiServer ROIServer,
) Server {
	return Server{
		CycleServer: cycleServer,
		ROIServer:   roiServer,
	}
}
