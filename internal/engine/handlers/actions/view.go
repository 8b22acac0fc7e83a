package actions

import "github.com/jerryeechan/poachers/internal/domain"

// requireView отказывает, если активен другой экран
func requireView(s *domain.GameState, allowed ...domain.ViewState) error {
	for _, v := range allowed {
		if s.View == v {
			return nil
		}
	}
	return domain.Refuse(domain.RefuseWrongView, "Недоступно на экране %s.", s.View)
}
