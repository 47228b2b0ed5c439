package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "builder",
			objectType:  "session",
			identifier:  "01HZX",
			expectedKey: "feedbackbuilder:builder:session:01HZX",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "builder",
			objectType:  "session",
			identifier:  "01HZX",
			paramsKey:   []string{},
			expectedKey: "feedbackbuilder:builder:session:01HZX",
		},
		{
			name:        "with one paramsKey",
			serviceName: "catalog",
			objectType:  "categories",
			identifier:  "all",
			paramsKey:   []string{"1000"},
			expectedKey: "feedbackbuilder:catalog:categories:all:1000",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "builder",
			objectType:  "submit",
			identifier:  "01HZX",
			paramsKey:   []string{"lock", "v2"},
			expectedKey: "feedbackbuilder:builder:submit:01HZX:lock_v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualKey := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if actualKey != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %v, want %v", actualKey, tt.expectedKey)
			}
		})
	}
}
