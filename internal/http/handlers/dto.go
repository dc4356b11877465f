package handlers

// orderRequest mirrors the estimate form: per-item counts plus boolean
// flags for the optional services.
type orderRequest struct {
	CustomerName               string `json:"customer_name"`
	Tel                        string `json:"tel"`
	Email                      string `json:"email"`
	OldPrefectureID            string `json:"old_prefecture_id"`
	NewPrefectureID            string `json:"new_prefecture_id"`
	OldAddress                 string `json:"old_address"`
	NewAddress                 string `json:"new_address"`
	Box                        int    `json:"box"`
	Bed                        int    `json:"bed"`
	Bicycle                    int    `json:"bicycle"`
	WashingMachine             int    `json:"washing_machine"`
	WashingMachineInstallation bool   `json:"washing_machine_installation"`
}

type estimateResponse struct {
	Price int `json:"price"`
}

type registerResponse struct {
	CustomerID int64 `json:"customer_id"`
}

type prefectureDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
