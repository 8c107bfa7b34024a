package geo

// Location holds geographic coordinates in degrees
type Location struct {
	Latitude  float64
	Longitude float64
}

// zoneCoordinates maps IANA timezone identifiers to the coordinates of their
// reference city. The table covers the zones the clock UI offers; an unknown
// identifier is a valid state and callers fall back per their own contract.
var zoneCoordinates = map[string]Location{
	"Africa/Cairo":         {30.0444, 31.2357},
	"Africa/Johannesburg":  {-26.2041, 28.0473},
	"Africa/Lagos":         {6.5244, 3.3792},
	"Africa/Nairobi":       {-1.2921, 36.8219},
	"America/Anchorage":    {61.2181, -149.9003},
	"America/Argentina/Buenos_Aires": {-34.6037, -58.3816},
	"America/Bogota":       {4.7110, -74.0721},
	"America/Chicago":      {41.8781, -87.6298},
	"America/Denver":       {39.7392, -104.9903},
	"America/Halifax":      {44.6488, -63.5752},
	"America/Lima":         {-12.0464, -77.0428},
	"America/Los_Angeles":  {34.0522, -118.2437},
	"America/Mexico_City":  {19.4326, -99.1332},
	"America/New_York":     {40.7128, -74.0060},
	"America/Phoenix":      {33.4484, -112.0740},
	"America/Sao_Paulo":    {-23.5505, -46.6333},
	"America/Toronto":      {43.6532, -79.3832},
	"America/Vancouver":    {49.2827, -123.1207},
	"Asia/Bangkok":         {13.7563, 100.5018},
	"Asia/Dubai":           {25.2048, 55.2708},
	"Asia/Hong_Kong":       {22.3193, 114.1694},
	"Asia/Jakarta":         {-6.2088, 106.8456},
	"Asia/Kolkata":         {22.5726, 88.3639},
	"Asia/Seoul":           {37.5665, 126.9780},
	"Asia/Shanghai":        {31.2304, 121.4737},
	"Asia/Singapore":       {1.3521, 103.8198},
	"Asia/Tokyo":           {35.6762, 139.6503},
	"Atlantic/Reykjavik":   {64.1466, -21.9426},
	"Australia/Melbourne":  {-37.8136, 144.9631},
	"Australia/Perth":      {-31.9505, 115.8605},
	"Australia/Sydney":     {-33.8688, 151.2093},
	"Europe/Amsterdam":     {52.3676, 4.9041},
	"Europe/Athens":        {37.9838, 23.7275},
	"Europe/Berlin":        {52.5200, 13.4050},
	"Europe/Helsinki":      {60.1695, 24.9354},
	"Europe/Istanbul":      {41.0082, 28.9784},
	"Europe/Lisbon":        {38.7223, -9.1393},
	"Europe/London":        {51.5074, -0.1278},
	"Europe/Madrid":        {40.4168, -3.7038},
	"Europe/Moscow":        {55.7558, 37.6173},
	"Europe/Oslo":          {59.9139, 10.7522},
	"Europe/Paris":         {48.8566, 2.3522},
	"Europe/Rome":          {41.9028, 12.4964},
	"Europe/Stockholm":     {59.3293, 18.0686},
	"Europe/Warsaw":        {52.2297, 21.0122},
	"Europe/Zurich":        {47.3769, 8.5417},
	"Pacific/Auckland":     {-36.8485, 174.7633},
	"Pacific/Honolulu":     {21.3069, -157.8583},
	"UTC":                  {0.0, 0.0},
}

// CoordinatesFor looks up coordinates for an IANA timezone identifier.
// The second return value reports whether the zone is known.
func CoordinatesFor(timezone string) (Location, bool) {
	loc, ok := zoneCoordinates[timezone]
	return loc, ok
}

// KnownZones returns the number of timezones in the lookup table
func KnownZones() int {
	return len(zoneCoordinates)
}
