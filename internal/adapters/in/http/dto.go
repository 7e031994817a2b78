package http

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ScheduleOrderRequest books a delivery slot for a driver. Datetimes travel
// as strings in the configured layout.
type ScheduleOrderRequest struct {
	Driver         int    `json:"driver"`
	PickupDatetime string `json:"pickup_datetime"`
	PickupLat      int    `json:"pickup_lat"`
	PickupLng      int    `json:"pickup_lng"`
	DeliveryLat    int    `json:"delivery_lat"`
	DeliveryLng    int    `json:"delivery_lng"`
}

// ScheduleOrderResponse carries the id the store assigned to the new order.
type ScheduleOrderResponse struct {
	ID int `json:"id"`
}

// Order is one scheduled order in listings and single-order reads.
type Order struct {
	ID             int    `json:"id"`
	Driver         int    `json:"driver"`
	PickupDatetime string `json:"pickup_datetime"`
	PickupLat      int    `json:"pickup_lat"`
	PickupLng      int    `json:"pickup_lng"`
	DeliveryLat    int    `json:"delivery_lat"`
	DeliveryLng    int    `json:"delivery_lng"`
}

// NewDriver registers a driver manually, outside the location feed.
type NewDriver struct {
	ID         int    `json:"id"`
	Lat        int    `json:"lat"`
	Lng        int    `json:"lng"`
	LastUpdate string `json:"last_update"`
}

// Driver is one fleet member in listings and single-driver reads.
type Driver struct {
	ID         int    `json:"id"`
	Lat        int    `json:"lat"`
	Lng        int    `json:"lng"`
	LastUpdate string `json:"last_update"`
}

// DriverLocation reports a new position for an existing driver.
type DriverLocation struct {
	Lat        int    `json:"lat"`
	Lng        int    `json:"lng"`
	LastUpdate string `json:"last_update"`
}

// ClosestDriver is the recommendation of the nearest-driver search.
type ClosestDriver struct {
	ID    int    `json:"id"`
	Phase string `json:"phase"`
}
