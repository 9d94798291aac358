package features

import (
	"path/filepath"

	"github.com/jakoblorz/flutterforge/internal/filesystem"
	"github.com/jakoblorz/flutterforge/internal/models"
)

const apiClientTemplate = `import 'package:dio/dio.dart';
import 'package:flutter_riverpod/flutter_riverpod.dart';

/// A simple HTTP client for making API requests
class ApiClient {
  final Dio _dio;
  final String baseUrl;

  ApiClient({required this.baseUrl}) : _dio = Dio() {
    _dio.options.baseUrl = baseUrl;
    _dio.options.connectTimeout = const Duration(seconds: 5);
    _dio.options.receiveTimeout = const Duration(seconds: 3);
  }

  /// Makes a GET request to the specified path
  Future<Response> get(String path, {Map<String, dynamic>? queryParameters}) async {
    try {
      return await _dio.get(path, queryParameters: queryParameters);
    } on DioException catch (e) {
      throw _handleError(e);
    }
  }

  /// Makes a POST request to the specified path
  Future<Response> post(String path, {dynamic data}) async {
    try {
      return await _dio.post(path, data: data);
    } on DioException catch (e) {
      throw _handleError(e);
    }
  }

  Exception _handleError(DioException error) {
    switch (error.type) {
      case DioExceptionType.connectionTimeout:
      case DioExceptionType.sendTimeout:
      case DioExceptionType.receiveTimeout:
        return Exception('Request timed out');
      case DioExceptionType.badResponse:
        return Exception('Server error: ${error.response?.statusCode}');
      default:
        return Exception('Network error: ${error.message}');
    }
  }
}

/// Provider for the API client
final apiClientProvider = Provider<ApiClient>((ref) {
  return ApiClient(baseUrl: '{{ .Config.base_url | default "https://api.example.com" }}');
});
`

// Backend installs a dio-based API client. The base URL is
// configurable via the "base_url" config key.
type Backend struct{}

func (Backend) Name() string { return "Backend Client" }

func (Backend) Dependencies() []string { return []string{"State Management"} }

func (Backend) PackageRequirements() []models.PackageRequirement {
	return []models.PackageRequirement{
		models.NewPackageRequirement("dio", "^5.3.3"),
	}
}

func (Backend) Render(projectName string, config models.Config) (map[string]string, error) {
	return renderAll(map[string]string{
		"lib/core/backend/api_client.dart": apiClientTemplate,
	}, templateData{Project: projectName, Config: config})
}

// Uninstall removes the backend client directory (best-effort)
func (Backend) Uninstall(fs filesystem.FileSystem, projectRoot, projectName string, config models.Config) error {
	return fs.RemoveAll(filepath.Join(projectRoot, "lib", "core", "backend"))
}
