package features

import (
	"github.com/jakoblorz/flutterforge/internal/models"
)

const authProviderTemplate = `import 'package:flutter_riverpod/flutter_riverpod.dart';

class AuthState {
  final bool isAuthenticated;
  final String? userId;

  AuthState({this.isAuthenticated = false, this.userId});

  AuthState copyWith({bool? isAuthenticated, String? userId}) {
    return AuthState(
      isAuthenticated: isAuthenticated ?? this.isAuthenticated,
      userId: userId ?? this.userId,
    );
  }
}

class AuthNotifier extends StateNotifier<AuthState> {
  AuthNotifier() : super(AuthState());

  void login(String userId) {
    state = state.copyWith(isAuthenticated: true, userId: userId);
  }

  void logout() {
    state = AuthState();
  }
}

final authProvider = StateNotifierProvider<AuthNotifier, AuthState>((ref) {
  return AuthNotifier();
});
`

// Auth installs a minimal Riverpod-backed authentication state
type Auth struct{}

func (Auth) Name() string { return "Authentication Support" }

func (Auth) Dependencies() []string { return []string{"State Management"} }

func (Auth) PackageRequirements() []models.PackageRequirement { return nil }

func (Auth) Render(projectName string, config models.Config) (map[string]string, error) {
	return renderAll(map[string]string{
		"lib/core/providers/auth_provider.dart": authProviderTemplate,
	}, templateData{Project: projectName, Config: config})
}
