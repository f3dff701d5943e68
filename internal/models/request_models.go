package models

// SignInRequest is the body of POST /signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest is the body of POST /signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// CreateReviewRequest is the body of POST /reviews.
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// UpdatePlanRequest is the body of POST /update-plan.
type UpdatePlanRequest struct {
	Plan string `json:"plan"`
}

// CreateCheckoutRequest is the body of POST /create-checkout. Amount is in
// euros; DonorMessage and UserEmail are optional.
type CreateCheckoutRequest struct {
	Amount       float64 `json:"amount"`
	DonorMessage string  `json:"donorMessage"`
	UserEmail    string  `json:"userEmail"`
}
