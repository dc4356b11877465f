package handlers

import "moving-estimate-service/internal/domain"

func orderFromRequest(req orderRequest) *domain.Order {
	var services []domain.OptionalServiceType
	if req.WashingMachineInstallation {
		services = append(services, domain.ServiceWashingMachineInstall)
	}

	return &domain.Order{
		CustomerName:    req.CustomerName,
		Tel:             req.Tel,
		Email:           req.Email,
		OldPrefectureID: req.OldPrefectureID,
		NewPrefectureID: req.NewPrefectureID,
		OldAddress:      req.OldAddress,
		NewAddress:      req.NewAddress,
		Packages: map[domain.PackageType]int{
			domain.PackageBox:            req.Box,
			domain.PackageBed:            req.Bed,
			domain.PackageBicycle:        req.Bicycle,
			domain.PackageWashingMachine: req.WashingMachine,
		},
		OptionalServices: services,
	}
}

func prefecturesToResponse(prefectures []domain.Prefecture) []prefectureDTO {
	out := make([]prefectureDTO, 0, len(prefectures))
	for _, p := range prefectures {
		out = append(out, prefectureDTO{ID: p.ID, Name: p.Name})
	}
	return out
}
